package docgen_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/docgen"
)

func newRenderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	docgen.NewHandler().RegisterRoutes(api)
	return router
}

func postRender(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/render", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRenderEndpointStreamsDocument(t *testing.T) {
	router := newRenderRouter()

	resp := postRender(t, router, `{"content":"line one\nline two","kind":"Resume","jobTitle":"Senior Dev/Eng!","companyName":"Acme & Co."}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Type"); !strings.Contains(got, "officedocument.wordprocessingml.document") {
		t.Fatalf("unexpected content type: %q", got)
	}
	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="Resume_SeniorDevEng_AcmeCo.docx"` {
		t.Fatalf("unexpected disposition: %q", got)
	}
	if resp.Body.Len() == 0 {
		t.Fatal("expected document bytes")
	}
}

func TestRenderEndpointMissingContent(t *testing.T) {
	router := newRenderRouter()

	resp := postRender(t, router, `{"kind":"Resume"}`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"Missing document content"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestRenderEndpointInvalidBody(t *testing.T) {
	router := newRenderRouter()

	resp := postRender(t, router, `not json`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
