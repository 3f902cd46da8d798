package services

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"portfolio-backend/apperr"
)

// fakeUploader records stored objects instead of talking to the media host
type fakeUploader struct {
	keys []string
	err  error
}

func (u *fakeUploader) Upload(key string, reader io.Reader, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.keys = append(u.keys, key)
	return "https://media.example.com/" + key, nil
}

func (u *fakeUploader) Delete(key string) error { return nil }

// multipartFile builds a real multipart file header carrying content
func multipartFile(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to create multipart part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write multipart content: %v", err)
	}
	writer.Close()

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}
	return form.File["file"][0]
}

func TestUploadStoresFile(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewUploadService(uploader)

	file := multipartFile(t, "shot.png", "image/png", "fake image bytes")
	resp, err := svc.Upload(file, "image")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if resp.FileName != "shot.png" || resp.Type != "image" {
		t.Errorf("response = %+v, want shot.png of type image", resp)
	}
	if len(uploader.keys) != 1 {
		t.Fatalf("uploader stored %d objects, want 1", len(uploader.keys))
	}
	if !strings.HasPrefix(uploader.keys[0], "image/") || !strings.HasSuffix(uploader.keys[0], ".png") {
		t.Errorf("object key = %q, want image/<uuid>.png", uploader.keys[0])
	}
	if !strings.HasPrefix(resp.URL, "https://media.example.com/") {
		t.Errorf("url = %q, want the media host url", resp.URL)
	}
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	file := multipartFile(t, "shot.png", "image/png", "bytes")
	if _, err := svc.Upload(file, "archive"); !apperr.IsValidation(err) {
		t.Errorf("unknown kind returned %v, want validation error", err)
	}
}

func TestUploadRejectsMimeMismatch(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	file := multipartFile(t, "script.sh", "application/x-sh", "#!/bin/sh")
	if _, err := svc.Upload(file, "image"); !apperr.IsValidation(err) {
		t.Errorf("disallowed mime type returned %v, want validation error", err)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	file := multipartFile(t, "big.png", "image/png", "bytes")
	file.Size = maxImageSize + 1
	if _, err := svc.Upload(file, "image"); !apperr.IsValidation(err) {
		t.Errorf("oversized file returned %v, want validation error", err)
	}
}

func TestUploadUpstreamFailure(t *testing.T) {
	svc := NewUploadService(&fakeUploader{err: errors.New("bucket gone")})

	file := multipartFile(t, "shot.png", "image/png", "bytes")
	_, err := svc.Upload(file, "image")

	var upstream *apperr.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Upload returned %v, want upstream error", err)
	}
	if upstream.Service != "media host" {
		t.Errorf("upstream service = %q, want media host", upstream.Service)
	}
}
