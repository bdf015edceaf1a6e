package entitlements

import "testing"

func TestNormalizePlan(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "trial", want: "trial"},
		{in: "launch", want: "launch"},
		{in: "SCALE", want: "scale"},
		{in: "  Enterprise ", want: "enterprise"},
		{in: "acme_partner_2026", want: "acme_partner_2026"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizePlan(tt.in); got != tt.want {
			t.Fatalf("NormalizePlan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlanRank(t *testing.T) {
	if PlanRank("trial") >= PlanRank("launch") {
		t.Fatalf("expected launch to outrank trial")
	}
	if PlanRank("launch") >= PlanRank("scale") {
		t.Fatalf("expected scale to outrank launch")
	}
	if PlanRank("scale") >= PlanRank("enterprise") {
		t.Fatalf("expected enterprise to outrank scale")
	}
	if PlanRank("acme_partner_2026") >= PlanRank("trial") {
		t.Fatalf("expected custom plans to rank below trial")
	}
}

func TestStaticPlanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "trial", want: "Trial"},
		{in: "ENTERPRISE", want: "Enterprise"},
		{in: "acme_partner_2026", want: "acme_partner_2026"},
	}

	for _, tt := range tests {
		if got := StaticPlanName(tt.in); got != tt.want {
			t.Fatalf("StaticPlanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStaticTablesCoverAllBuiltInPlans(t *testing.T) {
	for _, plan := range []Plan{PlanTrial, PlanLaunch, PlanScale, PlanEnterprise} {
		if _, ok := staticPlanFeatures[string(plan)]; !ok {
			t.Fatalf("no static feature set for plan %s", plan)
		}
		if _, ok := staticSeatLimits[string(plan)]; !ok {
			t.Fatalf("no static seat limit for plan %s", plan)
		}
		if _, ok := staticStorageLimitsMB[string(plan)]; !ok {
			t.Fatalf("no static storage limit for plan %s", plan)
		}
	}
}

func TestHigherTiersNeverLoseFeatures(t *testing.T) {
	order := []Plan{PlanTrial, PlanLaunch, PlanScale, PlanEnterprise}
	for i := 1; i < len(order); i++ {
		lower := staticPlanFeatures[string(order[i-1])]
		higher := make(map[string]bool)
		for _, key := range staticPlanFeatures[string(order[i])] {
			higher[key] = true
		}
		for _, key := range lower {
			if !higher[key] {
				t.Fatalf("plan %s drops feature %q granted by %s", order[i], key, order[i-1])
			}
		}
	}
}
