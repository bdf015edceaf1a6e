package catalog

// businessTypeFeatures lists which features each business vertical may
// use, regardless of plan. A vertical missing from this table gets an
// empty allow-list (fail-closed); legacy tenants with no vertical are
// handled in FeaturesForBusinessType and get the full catalog.
var businessTypeFeatures = map[string][]string{
	"printing_press": {
		FeatureInvoicing, FeatureQuotes, FeatureExpenses,
		FeatureInventory, FeatureSuppliers,
		FeatureJobs, FeatureJobScheduling,
		FeatureCustomers,
		FeatureReports, FeatureAnalytics,
		FeatureFileLibrary, FeatureTeamManagement,
		FeatureAPIAccess, FeatureIntegrations,
	},
	"retail_shop": {
		FeatureInvoicing, FeatureExpenses,
		FeatureInventory, FeatureSuppliers,
		FeaturePOS,
		FeatureCustomers,
		FeatureReports, FeatureAnalytics,
		FeatureFileLibrary, FeatureTeamManagement,
		FeatureAPIAccess, FeatureIntegrations,
	},
	"pharmacy": {
		FeatureInvoicing, FeatureExpenses,
		FeatureInventory, FeatureSuppliers,
		FeaturePOS, FeaturePrescriptions,
		FeatureCustomers,
		FeatureReports,
		FeatureFileLibrary, FeatureTeamManagement,
		FeatureIntegrations,
	},
	"workshop": {
		FeatureInvoicing, FeatureQuotes, FeatureExpenses,
		FeatureInventory, FeatureSuppliers,
		FeatureJobs, FeatureJobScheduling,
		FeatureCustomers,
		FeatureReports, FeatureAnalytics,
		FeatureFileLibrary, FeatureTeamManagement,
		FeatureAPIAccess, FeatureIntegrations,
	},
}

// BusinessTypes returns the known vertical identifiers.
func BusinessTypes() []string {
	return []string{"printing_press", "retail_shop", "pharmacy", "workshop"}
}

// IsKnownBusinessType reports whether the vertical exists in the catalog.
func IsKnownBusinessType(businessType string) bool {
	_, ok := businessTypeFeatures[businessType]
	return ok
}
