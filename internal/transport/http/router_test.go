package httptransport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"roster/internal/platform/metrics"
	tenantmodels "roster/internal/tenant/models"
	"roster/pkg/platform/middleware/admin"
	"roster/pkg/platform/middleware/request"
	"roster/pkg/testutil"
)

const adminToken = "s3cret"

// Registered once per test binary; promauto panics on duplicates.
var opsMetrics = metrics.New()

type fakeReconciler struct {
	calls  int
	queued bool
}

func (f *fakeReconciler) Trigger() bool {
	f.calls++
	return f.queued
}

type fakeQuotas map[string]*tenantmodels.Quota

func (f fakeQuotas) ForDomain(_ context.Context, domain string) (*tenantmodels.Quota, error) {
	return f[domain], nil
}

type RouterSuite struct {
	suite.Suite
	reconciler *fakeReconciler
	router     http.Handler
	searchErr  error
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.reconciler = &fakeReconciler{queued: true}
	s.searchErr = nil
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(logger, adminToken,
		WithMetrics(opsMetrics),
		WithReconciler(s.reconciler),
		WithQuotas(fakeQuotas{"acme.io": {Domain: "acme.io", Tier: tenantmodels.TierPremium, Bytes: 50_000_000}}),
		WithChecks(
			Check{Name: "postgres", Probe: func(context.Context) error { return nil }},
			Check{Name: "search", Probe: func(context.Context) error { return s.searchErr }},
		),
	)
	s.router = NewRouter(h)
}

func (s *RouterSuite) adminRequest(method, path string) *http.Request {
	req := testutil.NewRequest(s.T(), method, path)
	req.Header.Set(admin.HeaderAdminToken, adminToken)
	return req
}

func (s *RouterSuite) TestHealth() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "status", "ok")
	s.NotEmpty(rr.Header().Get(request.HeaderRequestID))
}

func (s *RouterSuite) TestRequestIDIsEchoed() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/healthz")
	req.Header.Set(request.HeaderRequestID, "req-42")
	rr := testutil.DoRequest(s.router, req)
	s.Equal("req-42", rr.Header().Get(request.HeaderRequestID))
}

func (s *RouterSuite) TestReady() {
	s.Run("all checks pass", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/readyz"))
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("a failing check reports 503 with its error", func() {
		s.searchErr = errors.New("search index degraded")
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/readyz"))
		testutil.AssertStatus(s.T(), rr, http.StatusServiceUnavailable)

		body := testutil.UnmarshalResponse[struct {
			Checks map[string]string `json:"checks"`
		}](s.T(), rr)
		s.Equal("ok", body.Checks["postgres"])
		s.Equal("search index degraded", body.Checks["search"])
	})
}

func (s *RouterSuite) TestMetrics() {
	testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/healthz"))
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(s.T(), rr)
	s.Contains(rr.Body.String(), "roster_http_requests_total")
}

func (s *RouterSuite) TestReconcile() {
	s.Run("requires the admin token", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodPost, "/admin/reconcile"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
		s.Equal(0, s.reconciler.calls)
	})

	s.Run("queues a sweep", func() {
		rr := testutil.DoRequest(s.router, s.adminRequest(http.MethodPost, "/admin/reconcile"))
		testutil.AssertStatus(s.T(), rr, http.StatusAccepted)
		testutil.AssertJSONContains(s.T(), rr, "queued", true)
		s.Equal(1, s.reconciler.calls)
	})
}

func (s *RouterSuite) TestQuota() {
	s.Run("known domain", func() {
		rr := testutil.DoRequest(s.router, s.adminRequest(http.MethodGet, "/admin/tenants/acme.io/quota"))
		testutil.AssertStatusOK(s.T(), rr)
		quota := testutil.UnmarshalResponse[tenantmodels.Quota](s.T(), rr)
		s.Equal(int64(50_000_000), quota.Bytes)
		s.Equal(tenantmodels.TierPremium, quota.Tier)
	})

	s.Run("unknown domain is 404", func() {
		rr := testutil.DoRequest(s.router, s.adminRequest(http.MethodGet, "/admin/tenants/other.io/quota"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}

func TestAdminRoutesNeedAToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	router := NewRouter(New(logger, "", WithReconciler(&fakeReconciler{})))

	req := testutil.NewRequest(t, http.MethodPost, "/admin/reconcile")
	req.Header.Set(admin.HeaderAdminToken, "")
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusNotFound, rr.Code, "admin routes are not mounted without a token")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	require.Equal(t, http.StatusOK, rr.Code)
}
