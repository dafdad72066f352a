// Package httptransport serves the operational HTTP surface: liveness,
// readiness, metrics and the admin endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roster/internal/platform/metrics"
	tenantmodels "roster/internal/tenant/models"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/httputil"
	"roster/pkg/platform/middleware/admin"
	"roster/pkg/platform/middleware/request"
	"roster/pkg/platform/middleware/requesttime"
)

const readinessTimeout = 2 * time.Second

// Check is one readiness probe. Probe returns nil when the dependency is usable.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Reconciler queues an out-of-band reconcile sweep.
type Reconciler interface {
	Trigger() bool
}

type QuotaService interface {
	ForDomain(ctx context.Context, domain string) (*tenantmodels.Quota, error)
}

type Handler struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	checks     []Check
	reconciler Reconciler
	quotas     QuotaService
	adminToken string
}

type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func WithChecks(checks ...Check) Option {
	return func(h *Handler) {
		h.checks = append(h.checks, checks...)
	}
}

func WithReconciler(r Reconciler) Option {
	return func(h *Handler) {
		h.reconciler = r
	}
}

func WithQuotas(q QuotaService) Option {
	return func(h *Handler) {
		h.quotas = q
	}
}

// New builds the ops handler. Admin routes are only mounted when adminToken
// is set.
func New(logger *slog.Logger, adminToken string, opts ...Option) *Handler {
	h := &Handler{logger: logger, adminToken: adminToken}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter returns a chi router with every ops route registered.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func (h *Handler) Register(r chi.Router) {
	r.Use(chimw.Recoverer)
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(h.countRequests)

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if h.adminToken == "" {
		return
	}
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		ar.Post("/reconcile", h.handleReconcile)
		ar.Get("/tenants/{domain}/quota", h.handleQuota)
	})
}

func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if h.metrics == nil {
			return
		}
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.IncrementRequest(route, status)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady runs every check and reports each result. Any failure is a 503.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for _, c := range h.checks {
		err := c.Probe(ctx)
		if h.metrics != nil {
			h.metrics.SetReady(c.Name, err == nil)
		}
		if err != nil {
			status = http.StatusServiceUnavailable
			results[c.Name] = err.Error()
			h.logger.WarnContext(ctx, "readiness check failed",
				"dependency", c.Name,
				"request_id", request.GetRequestID(r),
				"error", err,
			)
			continue
		}
		results[c.Name] = "ok"
	}
	httputil.WriteJSON(w, status, map[string]any{"checks": results})
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	if h.reconciler == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "reconcile worker is not running"))
		return
	}
	queued := h.reconciler.Trigger()
	h.logger.InfoContext(r.Context(), "reconcile requested",
		"queued", queued,
		"request_id", request.GetRequestID(r),
	)
	httputil.WriteJSON(w, http.StatusAccepted, map[string]bool{"queued": queued})
}

func (h *Handler) handleQuota(w http.ResponseWriter, r *http.Request) {
	if h.quotas == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "quota service is not configured"))
		return
	}
	domain := chi.URLParam(r, "domain")
	quota, err := h.quotas.ForDomain(r.Context(), domain)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to resolve quota",
			"domain", domain,
			"request_id", request.GetRequestID(r),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if quota == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no quota for domain "+domain))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, quota)
}
