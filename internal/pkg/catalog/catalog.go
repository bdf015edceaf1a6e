package catalog

// Feature is a single toggleable capability. Features are static
// configuration loaded at process start and never mutated, so they are
// safe to share across concurrent readers without locking.
type Feature struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Routes      []string `json:"routes"`      // URL prefixes this feature grants access to
	RequiredBy  []string `json:"required_by"` // module keys that require this feature
	Highlight   string   `json:"highlight"`   // marketing copy
	Perk        string   `json:"perk"`        // marketing copy
}

// PlanLimits maps plan ids to a usage limit, nil meaning unlimited.
type PlanLimits map[string]*int

// Module is a named bundle of features toggled together for packaging.
// A module is fully enabled for a tenant only when every one of its
// features is enabled.
type Module struct {
	Key         string                `json:"key"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Icon        string                `json:"icon"`
	Category    string                `json:"category"`
	Features    []Feature             `json:"features"`
	Limits      map[string]PlanLimits `json:"limits,omitempty"` // feature key -> per-plan usage limit
}

var featureIndex = buildFeatureIndex()

func buildFeatureIndex() map[string]Feature {
	idx := make(map[string]Feature, len(features))
	for _, f := range features {
		idx[f.Key] = f
	}
	return idx
}

// FeatureByKey looks up a feature by its key.
func FeatureByKey(key string) (Feature, bool) {
	f, ok := featureIndex[key]
	return f, ok
}

// Features returns all catalog features in declaration order.
func Features() []Feature {
	return features
}

// Modules returns all catalog modules in declaration order.
func Modules() []Module {
	return modules
}

// AllFeatureKeys returns every feature key in declaration order.
func AllFeatureKeys() []string {
	keys := make([]string, 0, len(features))
	for _, f := range features {
		keys = append(keys, f.Key)
	}
	return keys
}

// FeaturesForBusinessType returns the set of feature keys available to a
// business vertical. Tenants without a declared vertical predate
// business-type segmentation and get the full catalog.
func FeaturesForBusinessType(businessType string) map[string]struct{} {
	set := make(map[string]struct{})
	if businessType == "" {
		for _, f := range features {
			set[f.Key] = struct{}{}
		}
		return set
	}
	for _, key := range businessTypeFeatures[businessType] {
		set[key] = struct{}{}
	}
	return set
}

// IsFeatureAvailableForBusinessType reports whether a vertical may use a
// feature. An empty vertical allows everything (legacy tenants).
func IsFeatureAvailableForBusinessType(businessType, key string) bool {
	if businessType == "" {
		return true
	}
	for _, k := range businessTypeFeatures[businessType] {
		if k == key {
			return true
		}
	}
	return false
}

// FeaturesGroupedByCategory is a read-only projection for admin UIs,
// not part of the enforcement path.
func FeaturesGroupedByCategory() map[string][]Feature {
	grouped := make(map[string][]Feature)
	for _, f := range features {
		grouped[f.Category] = append(grouped[f.Category], f)
	}
	return grouped
}

// ModulesGroupedByCategory is a read-only projection for admin UIs.
func ModulesGroupedByCategory() map[string][]Module {
	grouped := make(map[string][]Module)
	for _, m := range modules {
		grouped[m.Category] = append(grouped[m.Category], m)
	}
	return grouped
}

// ModuleFullyEnabled reports whether every feature of a module is
// present in the given effective feature set.
func ModuleFullyEnabled(m Module, enabled map[string]struct{}) bool {
	for _, f := range m.Features {
		if _, ok := enabled[f.Key]; !ok {
			return false
		}
	}
	return true
}

// RouteBindings returns every (prefix, feature key) pair declared in the
// catalog, in declaration order. The entitlement evaluator builds its
// route index from this.
func RouteBindings() [][2]string {
	var bindings [][2]string
	for _, f := range features {
		for _, prefix := range f.Routes {
			bindings = append(bindings, [2]string{prefix, f.Key})
		}
	}
	return bindings
}
