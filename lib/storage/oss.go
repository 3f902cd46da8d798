package storage

import (
	"fmt"
	"io"
	"log"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"portfolio-backend/config"
)

// Uploader is the narrow interface the upload path depends on. The media
// host behind it is swappable.
type Uploader interface {
	Upload(objectKey string, reader io.Reader, contentType string) (string, error)
	Delete(objectKey string) error
}

// OSSClient stores media on an OSS bucket and serves it via public URLs
type OSSClient struct {
	bucket  *oss.Bucket
	baseURL string
}

// NewOSSClient builds a client from OSS_* environment variables
func NewOSSClient() (*OSSClient, error) {
	endpoint := config.GetEnv("OSS_ENDPOINT", "")
	keyID := config.GetEnv("OSS_ACCESS_KEY_ID", "")
	keySecret := config.GetEnv("OSS_ACCESS_KEY_SECRET", "")
	bucketName := config.GetEnv("OSS_BUCKET", "")

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET and OSS_BUCKET must be set")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to open OSS bucket %s: %w", bucketName, err)
	}

	baseURL := config.GetEnv("OSS_PUBLIC_BASE_URL",
		fmt.Sprintf("https://%s.%s", bucketName, endpoint))

	return &OSSClient{bucket: bucket, baseURL: baseURL}, nil
}

// Upload stores the object publicly readable and returns its public URL
func (c *OSSClient) Upload(objectKey string, reader io.Reader, contentType string) (string, error) {
	err := c.bucket.PutObject(objectKey, reader,
		oss.ContentType(contentType),
		oss.ObjectACL(oss.ACLPublicRead),
	)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", c.baseURL, objectKey), nil
}

// Delete removes an object. Callers treat failures as best-effort cleanup.
func (c *OSSClient) Delete(objectKey string) error {
	if err := c.bucket.DeleteObject(objectKey); err != nil {
		log.Printf("Warning: failed to delete OSS object %s: %v", objectKey, err)
		return err
	}
	return nil
}
