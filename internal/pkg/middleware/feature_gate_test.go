package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/entitlements"
	"github.com/craftora/craftora/internal/pkg/tenantcontext"
)

type fakePlanStore struct {
	err error
}

func (s *fakePlanStore) GetByPlanID(_ context.Context, _ string) (*models.Plan, error) {
	return nil, s.err
}

func newGatedApp(t *testing.T, tc *tenantcontext.TenantContext, storeErr error) *fiber.App {
	t.Helper()
	evaluator := entitlements.NewEvaluator(entitlements.NewResolver(&fakePlanStore{err: storeErr}))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if tc != nil {
			c.Locals(tenantcontext.ContextKey, *tc)
		}
		return c.Next()
	})
	app.Use("/invoices", FeatureGate(evaluator))
	app.Use("/pos", FeatureGate(evaluator))
	handler := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/invoices", handler)
	app.Get("/pos", handler)
	app.Get("/settings", handler)
	return app
}

func TestFeatureGateAllowsEnabledFeature(t *testing.T) {
	app := newGatedApp(t, &tenantcontext.TenantContext{
		TenantID: 1, Plan: "trial", BusinessType: "printing_press", IsResolved: true,
	}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/invoices", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFeatureGateDeniesMissingFeature(t *testing.T) {
	// Trial does not grant POS.
	app := newGatedApp(t, &tenantcontext.TenantContext{
		TenantID: 1, Plan: "trial", BusinessType: "retail_shop", IsResolved: true,
	}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/pos", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestFeatureGateDeniesVerticalExcludedFeature(t *testing.T) {
	// Launch grants POS, but printing presses may not use it.
	app := newGatedApp(t, &tenantcontext.TenantContext{
		TenantID: 1, Plan: "launch", BusinessType: "printing_press", IsResolved: true,
	}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/pos", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestFeatureGateUnresolvedTenant(t *testing.T) {
	app := newGatedApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/invoices", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFeatureGatePlatformAdminBypasses(t *testing.T) {
	app := newGatedApp(t, &tenantcontext.TenantContext{IsPlatformAdmin: true}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/pos", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFeatureGateResolverFailureIsRetryable(t *testing.T) {
	app := newGatedApp(t, &tenantcontext.TenantContext{
		TenantID: 1, Plan: "trial", IsResolved: true,
	}, errors.New("connection refused"))

	resp, err := app.Test(httptest.NewRequest("GET", "/invoices", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestFeatureGateIgnoresUngatedRoutes(t *testing.T) {
	app := newGatedApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/settings", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
