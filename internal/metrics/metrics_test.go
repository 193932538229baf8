package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPersistenceFailure(t *testing.T) {
	m := New()
	m.PersistenceFailure("save_payment")
	m.PersistenceFailure("save_payment")
	m.PersistenceFailure("delete_category")

	if got := testutil.ToFloat64(m.persistenceFailures.WithLabelValues("save_payment")); got != 2 {
		t.Errorf("save_payment failures = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.persistenceFailures.WithLabelValues("delete_category")); got != 1 {
		t.Errorf("delete_category failures = %v, want 1", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.PersistenceFailure("save_project")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	if !strings.Contains(string(body), `jobledger_persistence_failures_total{operation="save_project"} 1`) {
		t.Errorf("metrics output missing persistence counter:\n%s", body)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{connect.NewError(connect.CodeNotFound, errors.New("x")), "not_found"},
		{errors.New("plain"), "unknown"},
	}
	for _, tt := range tests {
		if got := codeOf(tt.err); got != tt.want {
			t.Errorf("codeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
