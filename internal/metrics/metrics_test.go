package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/download/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/download/*", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download/abc.docx", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("code = %d", rec.Code)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/download/*", "418"))
	if after-before != 1 {
		t.Fatalf("counter moved by %v", after-before)
	}
}

func TestConversionsTotal(t *testing.T) {
	before := testutil.ToFloat64(conversionsTotal.WithLabelValues(StatusRejected, "csv"))
	ConversionsTotal(StatusRejected, "csv")
	if got := testutil.ToFloat64(conversionsTotal.WithLabelValues(StatusRejected, "csv")) - before; got != 1 {
		t.Fatalf("delta = %v", got)
	}
}
