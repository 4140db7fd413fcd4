package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardRendersOrders(t *testing.T) {
	r, _ := setupPortal(t, newStubUpstream())

	req, _ := http.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ORD-10001")
	assert.Contains(t, body, "ORD-10002")
	assert.Contains(t, body, "PENDING")
	assert.Contains(t, body, "PAID")
	assert.Contains(t, body, "admin")
}

func TestDashboardAppliesStatusFilter(t *testing.T) {
	r, _ := setupPortal(t, newStubUpstream())

	req, _ := http.NewRequest("GET", "/dashboard?status=Delivered", nil)
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ORD-10002")
	assert.NotContains(t, body, `data-order="ORD-10001"`)
}

func TestDashboardSurvivesUpstreamOutage(t *testing.T) {
	stub := newStubUpstream()
	stub.mux = http.NewServeMux() // every endpoint 404s
	r, _ := setupPortal(t, stub)

	req, _ := http.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// empty shell, not an error page
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "ORD-10001")
}

func TestChartEndpoints(t *testing.T) {
	r, _ := setupPortal(t, newStubUpstream())

	for _, name := range []string{"status", "spend", "aging", "trend", "top"} {
		req, _ := http.NewRequest("GET", "/dashboard/charts/"+name+".png", nil)
		req.AddCookie(sessionCookie(t))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"), name)
		assert.NotEmpty(t, w.Body.Bytes(), name)
	}

	// no delivered order is overdue in the stub dataset
	req, _ := http.NewRequest("GET", "/dashboard/charts/overdue.png", nil)
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req, _ = http.NewRequest("GET", "/dashboard/charts/bogus.png", nil)
	req.AddCookie(sessionCookie(t))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChartFilteredToEmptyReturnsNoContent(t *testing.T) {
	r, _ := setupPortal(t, newStubUpstream())

	req, _ := http.NewRequest("GET", "/dashboard/charts/status.png?status=Cancelled", nil)
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
