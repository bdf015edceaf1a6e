package entitlements

import (
	"context"
	"errors"
	"strings"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/catalog"
)

// ErrNoTenant is returned when feature resolution is attempted without
// tenant context. Callers map this to a client error, distinct from a
// policy denial.
var ErrNoTenant = errors.New("no tenant context")

type routeBinding struct {
	prefix     string
	featureKey string
}

// Evaluator computes a tenant's effective feature set (plan features
// intersected with the business-vertical allow-list) and answers
// feature and route access questions against it.
type Evaluator struct {
	resolver *Resolver
	routes   []routeBinding // built once from the catalog, read-only
}

// NewEvaluator builds an evaluator over the given resolver. The route
// index is derived from the catalog at construction and never mutated.
func NewEvaluator(resolver *Resolver) *Evaluator {
	bindings := catalog.RouteBindings()
	routes := make([]routeBinding, 0, len(bindings))
	for _, b := range bindings {
		routes = append(routes, routeBinding{prefix: b[0], featureKey: b[1]})
	}
	return &Evaluator{resolver: resolver, routes: routes}
}

// EffectiveFeatures recomputes the tenant's feature set from plan and
// business type. The result is derived, never stored: plan or vertical
// changes take effect on the next check.
func (e *Evaluator) EffectiveFeatures(ctx context.Context, tenant *models.Tenant) (map[string]struct{}, error) {
	if tenant == nil {
		return nil, ErrNoTenant
	}

	planFeatures, err := e.resolver.FeaturesForPlan(ctx, tenant.Plan)
	if err != nil {
		return nil, err
	}
	return FilterByBusinessType(planFeatures, tenant.BusinessType), nil
}

// CanAccessFeature reports whether the feature key is in the effective
// set. Membership test only; unknown keys are simply absent.
func CanAccessFeature(features map[string]struct{}, featureKey string) bool {
	_, ok := features[featureKey]
	return ok
}

// CanAccessRoute reports whether a request path is reachable with the
// given effective feature set. Every catalog feature whose route-prefix
// list matches the path is considered; access is granted when at least
// one of them is in the set (union semantics, not first-match-wins).
// Paths no catalog feature declares are allowed: route gating is opt-in
// per route, not default-deny.
func (e *Evaluator) CanAccessRoute(features map[string]struct{}, path string) bool {
	matched := false
	for _, b := range e.routes {
		if !matchesPrefix(path, b.prefix) {
			continue
		}
		matched = true
		if _, ok := features[b.featureKey]; ok {
			return true
		}
	}
	return !matched
}

// matchesPrefix reports whether path falls under prefix on a path
// segment boundary, so "/inventory" matches "/inventory/123" but not
// "/inventory-report".
func matchesPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) {
		return true
	}
	return path[len(prefix)] == '/' || strings.HasSuffix(prefix, "/")
}
