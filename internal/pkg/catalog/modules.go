package catalog

// Module keys.
const (
	ModuleFinance      = "finance_billing"
	ModulePurchasing   = "inventory_purchasing"
	ModuleProduction   = "production_jobs"
	ModuleSalesCounter = "sales_counter"
	ModuleInsights     = "insights"
	ModuleWorkspace    = "workspace"
	ModulePlatform     = "platform"
)

func limit(n int) *int { return &n }

var modules = []Module{
	{
		Key:         ModuleFinance,
		Name:        "Finance & Billing",
		Description: "Invoices, quotes and expense tracking.",
		Icon:        "receipt",
		Category:    CategoryFinance,
		Features:    featuresByKeys(FeatureInvoicing, FeatureQuotes, FeatureExpenses),
		Limits: map[string]PlanLimits{
			// Invoices per month.
			FeatureInvoicing: {"trial": limit(5), "launch": limit(25), "scale": limit(100), "enterprise": nil},
			FeatureQuotes:    {"trial": limit(5), "launch": limit(25), "scale": limit(100), "enterprise": nil},
		},
	},
	{
		Key:         ModulePurchasing,
		Name:        "Inventory & Purchasing",
		Description: "Stock management and supplier purchasing.",
		Icon:        "boxes",
		Category:    CategoryInventory,
		Features:    featuresByKeys(FeatureInventory, FeatureSuppliers),
	},
	{
		Key:         ModuleProduction,
		Name:        "Production & Jobs",
		Description: "Job tracking and scheduling for production work.",
		Icon:        "factory",
		Category:    CategoryProduction,
		Features:    featuresByKeys(FeatureJobs, FeatureJobScheduling),
		Limits: map[string]PlanLimits{
			// Open jobs at a time.
			FeatureJobs: {"trial": limit(10), "launch": limit(50), "scale": nil, "enterprise": nil},
		},
	},
	{
		Key:         ModuleSalesCounter,
		Name:        "Sales Counter",
		Description: "Over-the-counter sales and prescription records.",
		Icon:        "cash-register",
		Category:    CategorySales,
		Features:    featuresByKeys(FeaturePOS, FeaturePrescriptions),
	},
	{
		Key:         ModuleInsights,
		Name:        "Insights",
		Description: "Reports and analytics.",
		Icon:        "chart-bar",
		Category:    CategoryInsights,
		Features:    featuresByKeys(FeatureReports, FeatureAnalytics),
	},
	{
		Key:         ModuleWorkspace,
		Name:        "Workspace",
		Description: "Customers, files and team management.",
		Icon:        "briefcase",
		Category:    CategoryWorkspace,
		Features:    featuresByKeys(FeatureCustomers, FeatureFileLibrary, FeatureTeamManagement),
	},
	{
		Key:         ModulePlatform,
		Name:        "Platform",
		Description: "API access and third-party integrations.",
		Icon:        "plug",
		Category:    CategoryPlatform,
		Features:    featuresByKeys(FeatureAPIAccess, FeatureIntegrations),
		Limits: map[string]PlanLimits{
			// API requests per minute.
			FeatureAPIAccess: {"trial": limit(30), "launch": limit(120), "scale": limit(600), "enterprise": nil},
		},
	},
}

func featuresByKeys(keys ...string) []Feature {
	out := make([]Feature, 0, len(keys))
	for _, key := range keys {
		for _, f := range features {
			if f.Key == key {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
