package entitlements

import "github.com/craftora/craftora/internal/pkg/catalog"

// FilterByBusinessType intersects a feature set with the allow-list of
// the tenant's business vertical. Tenants without a declared vertical
// keep their full plan access (they predate vertical segmentation).
// Pure set operation, no side effects.
func FilterByBusinessType(features map[string]struct{}, businessType string) map[string]struct{} {
	if businessType == "" {
		return features
	}

	allowed := catalog.FeaturesForBusinessType(businessType)
	filtered := make(map[string]struct{}, len(features))
	for key := range features {
		if _, ok := allowed[key]; ok {
			filtered[key] = struct{}{}
		}
	}
	return filtered
}
