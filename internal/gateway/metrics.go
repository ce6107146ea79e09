package gateway

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rookgm/salesadmin/internal/models"
)

// outcome label values
const (
	outcomeOK        = "ok"
	outcomeRemote    = "remote_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
	outcomeOther     = "error"
)

// Metrics holds gateway request metrics
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates gateway metrics and registers them in reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salesadmin_gateway_requests_total",
			Help: "Backend requests by resource, method and outcome.",
		}, []string{"resource", "method", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "salesadmin_gateway_request_duration_seconds",
			Help:    "Backend request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

func (m *Metrics) observe(res Resource, method string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(string(res), method, outcome(err)).Inc()
	m.requestDuration.WithLabelValues(string(res), method).Observe(d.Seconds())
}

func outcome(err error) string {
	var (
		remoteErr    *models.RemoteError
		transportErr *models.TransportError
		decodeErr    *models.DecodeError
	)
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &remoteErr):
		return outcomeRemote
	case errors.As(err, &transportErr):
		return outcomeTransport
	case errors.As(err, &decodeErr):
		return outcomeDecode
	default:
		return outcomeOther
	}
}
