package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/lib/ratelimit"
	"portfolio-backend/services"
)

type stubMailer struct {
	sent int
}

func (m *stubMailer) SendContactMessage(name, email, message string) error {
	m.sent++
	return nil
}

// swapContactService installs svc for the duration of the test. A nil svc
// lets contactSvc build the real one from the current environment.
func swapContactService(t *testing.T, svc *services.ContactService) {
	t.Helper()
	previous := contactService
	contactOnce = sync.Once{}
	contactService = svc
	t.Cleanup(func() {
		contactOnce = sync.Once{}
		contactService = previous
	})
}

func contactRouter(t *testing.T, m *stubMailer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	swapContactService(t, services.NewContactServiceWith(ratelimit.New(100, time.Minute), m))

	router := gin.New()
	router.POST("/contact", SubmitContact)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSubmitContactEndpoint(t *testing.T) {
	m := &stubMailer{}
	router := contactRouter(t, m)

	resp := postJSON(router, "/contact",
		`{"name":"Ali","email":"ali@example.com","message":"I would like to discuss a project."}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("valid submission returned %d: %s", resp.Code, resp.Body.String())
	}
	if m.sent != 1 {
		t.Errorf("mailer sent %d messages, want 1", m.sent)
	}
}

func TestSubmitContactEndpointRejectsMissingFields(t *testing.T) {
	m := &stubMailer{}
	router := contactRouter(t, m)

	resp := postJSON(router, "/contact", `{"name":"Ali"}`)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("missing fields returned %d, want 400", resp.Code)
	}
	if m.sent != 0 {
		t.Error("invalid submission must not reach the mailer")
	}
}

func TestSubmitContactEndpointRejectsShortMessage(t *testing.T) {
	m := &stubMailer{}
	router := contactRouter(t, m)

	resp := postJSON(router, "/contact",
		`{"name":"Ali","email":"ali@example.com","message":"hi"}`)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("short message returned %d, want 400", resp.Code)
	}
}

func TestSubmitContactEndpointRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	swapContactService(t, services.NewContactServiceWith(ratelimit.New(1, time.Minute), &stubMailer{}))

	router := gin.New()
	router.POST("/contact", SubmitContact)

	body := `{"name":"Ali","email":"ali@example.com","message":"I would like to discuss a project."}`
	if resp := postJSON(router, "/contact", body); resp.Code != http.StatusOK {
		t.Fatalf("first submission returned %d", resp.Code)
	}
	if resp := postJSON(router, "/contact", body); resp.Code != http.StatusTooManyRequests {
		t.Errorf("second submission returned %d, want 429", resp.Code)
	}
}

func TestSubmitContactBuildsServiceFromEnvironment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Values take effect only if construction happens after env setup,
	// the way main loads .env before serving
	t.Setenv("CONTACT_RATE_LIMIT", "1")
	t.Setenv("SMTP_HOST", "smtp.invalid")
	swapContactService(t, nil)

	router := gin.New()
	router.POST("/contact", SubmitContact)

	body := `{"name":"Ali","email":"ali@example.com","message":"I would like to discuss a project."}`

	// The first submission passes the limiter and fails at the unreachable
	// SMTP host; the second must be rejected by the configured limit of 1
	if resp := postJSON(router, "/contact", body); resp.Code != http.StatusInternalServerError {
		t.Fatalf("first submission returned %d, want 500 from the unreachable mail host", resp.Code)
	}
	if resp := postJSON(router, "/contact", body); resp.Code != http.StatusTooManyRequests {
		t.Errorf("second submission returned %d, want 429 under CONTACT_RATE_LIMIT=1", resp.Code)
	}
}
