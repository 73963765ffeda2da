package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsIsolation(t *testing.T) {
	m1 := New("0.1.0", "go1.25.5")
	m2 := New("0.2.0", "go1.25.5")

	m1.NotFoundTotal.Inc()

	if got := testutil.ToFloat64(m2.NotFoundTotal); got != 0 {
		t.Errorf("m2 saw m1's counter: %v", got)
	}
	if got := testutil.ToFloat64(m1.NotFoundTotal); got != 1 {
		t.Errorf("NotFoundTotal = %v, want 1", got)
	}
}

func TestObserveSweep(t *testing.T) {
	m := New("test", "go")
	m.ObserveSweep(0)
	m.ObserveSweep(3)
	if got := testutil.ToFloat64(m.SessionsSweptTotal); got != 3 {
		t.Errorf("SessionsSweptTotal = %v, want 3", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New("1.2.3", "go1.25.5")
	m.PageRendersTotal.WithLabelValues("article", "/webhook", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`devdocs_page_renders_total{page="article",route="/webhook",status="200"} 1`,
		`devdocs_info{go_version="go1.25.5",version="1.2.3"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
