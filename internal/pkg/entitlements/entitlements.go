package entitlements

import (
	"strings"

	"github.com/craftora/craftora/internal/pkg/catalog"
)

// Plan identifies a subscription tier.
type Plan string

const (
	PlanTrial      Plan = "trial"
	PlanLaunch     Plan = "launch"
	PlanScale      Plan = "scale"
	PlanEnterprise Plan = "enterprise"
)

// NormalizePlan maps arbitrary input to a known plan id, or returns the
// trimmed lowercase input unchanged for custom plan ids (partner deals).
// Custom ids resolve through the database only and fail closed when no
// record exists.
func NormalizePlan(plan string) string {
	return strings.ToLower(strings.TrimSpace(plan))
}

// PlanRank orders the built-in tiers for upgrade prompts. Custom plans
// rank below trial.
func PlanRank(plan string) int {
	switch NormalizePlan(plan) {
	case string(PlanEnterprise):
		return 3
	case string(PlanScale):
		return 2
	case string(PlanLaunch):
		return 1
	case string(PlanTrial):
		return 0
	default:
		return -1
	}
}

// unlimited is the nil sentinel used in the static limit tables.
var unlimited *int = nil

func limit(n int) *int { return &n }

// staticPlanFeatures is the fallback plan -> feature-key mapping for
// plans that have not yet been migrated into the plans table. The
// database record always wins when one exists; this table is consulted
// only when no record exists for the plan id. Both paths stay correct
// indefinitely, not just during the migration window.
var staticPlanFeatures = map[string][]string{
	string(PlanTrial): {
		catalog.FeatureInvoicing,
		catalog.FeatureExpenses,
		catalog.FeatureCustomers,
		catalog.FeatureFileLibrary,
		catalog.FeatureTeamManagement,
	},
	string(PlanLaunch): {
		catalog.FeatureInvoicing,
		catalog.FeatureQuotes,
		catalog.FeatureExpenses,
		catalog.FeatureInventory,
		catalog.FeatureJobs,
		catalog.FeaturePOS,
		catalog.FeaturePrescriptions,
		catalog.FeatureCustomers,
		catalog.FeatureReports,
		catalog.FeatureFileLibrary,
		catalog.FeatureTeamManagement,
	},
	string(PlanScale): {
		catalog.FeatureInvoicing,
		catalog.FeatureQuotes,
		catalog.FeatureExpenses,
		catalog.FeatureInventory,
		catalog.FeatureSuppliers,
		catalog.FeatureJobs,
		catalog.FeatureJobScheduling,
		catalog.FeaturePOS,
		catalog.FeaturePrescriptions,
		catalog.FeatureCustomers,
		catalog.FeatureReports,
		catalog.FeatureAnalytics,
		catalog.FeatureFileLibrary,
		catalog.FeatureTeamManagement,
		catalog.FeatureAPIAccess,
		catalog.FeatureIntegrations,
	},
	string(PlanEnterprise): {
		catalog.FeatureInvoicing,
		catalog.FeatureQuotes,
		catalog.FeatureExpenses,
		catalog.FeatureInventory,
		catalog.FeatureSuppliers,
		catalog.FeatureJobs,
		catalog.FeatureJobScheduling,
		catalog.FeaturePOS,
		catalog.FeaturePrescriptions,
		catalog.FeatureCustomers,
		catalog.FeatureReports,
		catalog.FeatureAnalytics,
		catalog.FeatureFileLibrary,
		catalog.FeatureTeamManagement,
		catalog.FeatureAPIAccess,
		catalog.FeatureIntegrations,
	},
}

// staticSeatLimits is the fallback plan -> seat limit table.
var staticSeatLimits = map[string]*int{
	string(PlanTrial):      limit(2),
	string(PlanLaunch):     limit(5),
	string(PlanScale):      limit(15),
	string(PlanEnterprise): unlimited,
}

// staticStorageLimitsMB is the fallback plan -> storage limit table.
var staticStorageLimitsMB = map[string]*int{
	string(PlanTrial):      limit(1024),   // 1 GB
	string(PlanLaunch):     limit(10240),  // 10 GB
	string(PlanScale):      limit(102400), // 100 GB
	string(PlanEnterprise): unlimited,
}

// staticPlanNames provides display names for plans without a database
// record. Unknown plan ids fall back to the raw id.
var staticPlanNames = map[string]string{
	string(PlanTrial):      "Trial",
	string(PlanLaunch):     "Launch",
	string(PlanScale):      "Scale",
	string(PlanEnterprise): "Enterprise",
}

// StaticPlanName returns the display name for a plan id.
func StaticPlanName(planID string) string {
	if name, ok := staticPlanNames[NormalizePlan(planID)]; ok {
		return name
	}
	return planID
}
