package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorsAreIsolated(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.AppointmentsTotal.WithLabelValues("booked").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.AppointmentsTotal.WithLabelValues("booked")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.AppointmentsTotal.WithLabelValues("booked")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	c := NewCollector("test")
	c.PatientsRegisteredTotal.Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_clinic_patients_registered_total 1")
}
