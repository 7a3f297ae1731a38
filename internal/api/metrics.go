package api

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Metrics struct {
	registry       *prometheus.Registry
	httpRequests   *prometheus.CounterVec
	signInFailures prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parishdesk_http_requests_total",
		Help: "HTTP requests by method, route, and status code.",
	}, []string{"method", "route", "status"})

	signInFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parishdesk_sign_in_failures_total",
		Help: "Rejected sign-in attempts.",
	})

	registry.MustRegister(
		httpRequests,
		signInFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:       registry,
		httpRequests:   httpRequests,
		signInFailures: signInFailures,
	}
}

// Middleware counts every handled request against its registered
// route pattern.
func (metrics *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		metrics.httpRequests.WithLabelValues(
			c.Method(),
			route,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()

		return err
	}
}

func (metrics *Metrics) CountSignInFailure() {
	metrics.signInFailures.Inc()
}

// Serve exposes /metrics on its own listener so the scrape endpoint
// never shares a port with the public API.
func (metrics *Metrics) Serve(port string, log *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{}))

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.WithError(err).Error("metrics listener exited")
	}
}
