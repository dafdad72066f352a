package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/account/models"
	"roster/internal/account/reconcile"
	"roster/internal/platform/config"
	"roster/internal/tenant/quota"
)

func quotaConfig() map[string]string {
	return map[string]string{
		quota.KeyBasicSize:      "10",
		quota.KeyPremiumSize:    "1000",
		quota.KeyUnlimitedSize:  "100000",
		quota.KeyBasicLevel:     "0",
		quota.KeyPremiumLevel:   "1",
		quota.KeyUnlimitedLevel: "-1",
	}
}

// build registers global metrics, so it runs once per test binary.
func TestBuild_InMemory(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := build(ctx, config.Config{Quota: quotaConfig()}, log)
	require.NoError(t, err)
	defer a.close()

	assert.Equal(t, "memory", a.backend)
	require.NotNil(t, a.accounts)
	require.NotNil(t, a.projector)
	require.NotNil(t, a.reconciler)
	require.NotNil(t, a.quotas)

	created, err := a.accounts.CreateAccount(ctx, models.Profile{Email: "Alice@ACME.io"}, "acme.io")
	require.NoError(t, err)

	view, err := a.projector.Project(ctx, created, "Alice@acme.io")
	require.NoError(t, err)
	assert.True(t, view.IsSelf)

	result, err := a.reconciler.Sweep(ctx, reconcile.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Visited)
	assert.False(t, result.Failed())
}

func TestBuild_RejectsQuotaBeforeDialling(t *testing.T) {
	cfg := config.Config{Quota: map[string]string{quota.KeyBasicSize: "10"}}
	cfg.Database.URL = "postgres://unreachable.invalid/roster"

	_, err := build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "quota configuration")
}
