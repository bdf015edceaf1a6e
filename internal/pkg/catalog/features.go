package catalog

// Feature categories.
const (
	CategoryFinance    = "finance"
	CategoryInventory  = "inventory"
	CategoryProduction = "production"
	CategorySales      = "sales"
	CategoryCRM        = "crm"
	CategoryInsights   = "insights"
	CategoryWorkspace  = "workspace"
	CategoryPlatform   = "platform"
)

// Feature keys.
const (
	FeatureInvoicing      = "invoicing"
	FeatureQuotes         = "quotes"
	FeatureExpenses       = "expenses"
	FeatureInventory      = "inventory"
	FeatureSuppliers      = "suppliers"
	FeatureJobs           = "jobs"
	FeatureJobScheduling  = "job_scheduling"
	FeaturePOS            = "pos"
	FeaturePrescriptions  = "prescriptions"
	FeatureCustomers      = "customers"
	FeatureReports        = "reports"
	FeatureAnalytics      = "analytics"
	FeatureFileLibrary    = "file_library"
	FeatureTeamManagement = "team_management"
	FeatureAPIAccess      = "api_access"
	FeatureIntegrations   = "integrations"
)

var features = []Feature{
	{
		Key:         FeatureInvoicing,
		Name:        "Invoicing",
		Description: "Create, send and track invoices with tax handling.",
		Category:    CategoryFinance,
		Routes:      []string{"/invoices"},
		RequiredBy:  []string{ModuleFinance},
		Highlight:   "Professional invoices in seconds",
		Perk:        "Unbranded PDF invoices",
	},
	{
		Key:         FeatureQuotes,
		Name:        "Quotes & Estimates",
		Description: "Send quotes and convert accepted ones into invoices.",
		Category:    CategoryFinance,
		Routes:      []string{"/quotes"},
		RequiredBy:  []string{ModuleFinance},
		Highlight:   "From estimate to invoice in one click",
		Perk:        "Quote acceptance tracking",
	},
	{
		Key:         FeatureExpenses,
		Name:        "Expense Tracking",
		Description: "Record business expenses and attach receipts.",
		Category:    CategoryFinance,
		Routes:      []string{"/expenses"},
		RequiredBy:  []string{ModuleFinance},
		Highlight:   "Know where the money goes",
		Perk:        "Receipt capture",
	},
	{
		Key:         FeatureInventory,
		Name:        "Inventory",
		Description: "Track stock levels, materials and low-stock alerts.",
		Category:    CategoryInventory,
		Routes:      []string{"/inventory", "/stock"},
		RequiredBy:  []string{ModulePurchasing},
		Highlight:   "Never run out of materials",
		Perk:        "Low-stock alerts",
	},
	{
		Key:         FeatureSuppliers,
		Name:        "Suppliers & Purchasing",
		Description: "Manage suppliers and purchase orders.",
		Category:    CategoryInventory,
		Routes:      []string{"/suppliers", "/purchase-orders"},
		RequiredBy:  []string{ModulePurchasing},
		Highlight:   "Purchase orders without the paperwork",
		Perk:        "Supplier price history",
	},
	{
		Key:         FeatureJobs,
		Name:        "Production Jobs",
		Description: "Track production jobs from intake to delivery.",
		Category:    CategoryProduction,
		Routes:      []string{"/jobs"},
		RequiredBy:  []string{ModuleProduction},
		Highlight:   "Every job on one board",
		Perk:        "Job status timeline",
	},
	{
		Key:         FeatureJobScheduling,
		Name:        "Job Scheduling",
		Description: "Plan machine and staff time across open jobs.",
		Category:    CategoryProduction,
		Routes:      []string{"/schedule"},
		RequiredBy:  []string{ModuleProduction},
		Highlight:   "See the whole week at a glance",
		Perk:        "Drag-and-drop planning",
	},
	{
		Key:         FeaturePOS,
		Name:        "Sales Counter",
		Description: "Fast over-the-counter sales with daily till reports.",
		Category:    CategorySales,
		Routes:      []string{"/pos"},
		RequiredBy:  []string{ModuleSalesCounter},
		Highlight:   "Ring up sales in two taps",
		Perk:        "Daily till reconciliation",
	},
	{
		Key:         FeaturePrescriptions,
		Name:        "Prescription Records",
		Description: "Keep prescription records alongside counter sales.",
		Category:    CategorySales,
		Routes:      []string{"/prescriptions"},
		RequiredBy:  []string{ModuleSalesCounter},
		Highlight:   "Prescriptions and sales in one place",
		Perk:        "Refill reminders",
	},
	{
		Key:         FeatureCustomers,
		Name:        "Customer Directory",
		Description: "Central customer records with order history.",
		Category:    CategoryCRM,
		Routes:      []string{"/customers"},
		RequiredBy:  []string{ModuleWorkspace},
		Highlight:   "Every customer, every order",
		Perk:        "Order history per customer",
	},
	{
		Key:         FeatureReports,
		Name:        "Reports",
		Description: "Standard revenue, tax and activity reports.",
		Category:    CategoryInsights,
		Routes:      []string{"/reports"},
		RequiredBy:  []string{ModuleInsights},
		Highlight:   "Month-end in minutes",
		Perk:        "Exportable reports",
	},
	{
		Key:         FeatureAnalytics,
		Name:        "Analytics",
		Description: "Trends and breakdowns across revenue and jobs.",
		Category:    CategoryInsights,
		Routes:      []string{"/analytics"},
		RequiredBy:  []string{ModuleInsights},
		Highlight:   "Spot trends before they bite",
		Perk:        "Custom date ranges",
	},
	{
		Key:         FeatureFileLibrary,
		Name:        "File Library",
		Description: "Store artwork, documents and attachments per tenant.",
		Category:    CategoryWorkspace,
		Routes:      []string{"/files"},
		RequiredBy:  []string{ModuleWorkspace},
		Highlight:   "All your files next to your jobs",
		Perk:        "Version history",
	},
	{
		Key:         FeatureTeamManagement,
		Name:        "Team Management",
		Description: "Invite staff, assign roles and manage seats.",
		Category:    CategoryWorkspace,
		Routes:      []string{"/team"},
		RequiredBy:  []string{ModuleWorkspace},
		Highlight:   "Bring the whole team",
		Perk:        "Role-based access",
	},
	{
		// Gates API key issuance, not a UI route.
		Key:         FeatureAPIAccess,
		Name:        "API Access",
		Description: "Programmatic access via API keys.",
		Category:    CategoryPlatform,
		Routes:      nil,
		RequiredBy:  []string{ModulePlatform},
		Highlight:   "Build on top of your data",
		Perk:        "Per-key rate limits",
	},
	{
		Key:         FeatureIntegrations,
		Name:        "Integrations",
		Description: "Connect accounting and e-commerce tools.",
		Category:    CategoryPlatform,
		Routes:      []string{"/integrations"},
		RequiredBy:  []string{ModulePlatform},
		Highlight:   "Talks to the tools you already use",
		Perk:        "Accounting export",
	},
}
