package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantValidate(t *testing.T) {
	tests := []struct {
		name    string
		tenant  Tenant
		wantErr bool
	}{
		{
			name:   "Valid tenant",
			tenant: Tenant{Name: "Acme Print", Plan: "trial", BusinessType: "printing_press", Status: "active"},
		},
		{
			name:   "Legacy tenant without vertical",
			tenant: Tenant{Name: "Old Shop", Plan: "launch", Status: "active"},
		},
		{
			name:    "Missing name",
			tenant:  Tenant{Plan: "trial", Status: "active"},
			wantErr: true,
		},
		{
			name:    "Unknown business type",
			tenant:  Tenant{Name: "Bakery", Plan: "trial", BusinessType: "bakery", Status: "active"},
			wantErr: true,
		},
		{
			name:    "Unknown status",
			tenant:  Tenant{Name: "Acme Print", Plan: "trial", Status: "archived"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tenant.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTenantBeforeCreateAssignsUUID(t *testing.T) {
	tenant := &Tenant{Name: "Acme Print"}
	require.NoError(t, tenant.BeforeCreate(nil))
	assert.NotEmpty(t, tenant.UUID)

	existing := &Tenant{Name: "Acme Print", UUID: "already-set"}
	require.NoError(t, existing.BeforeCreate(nil))
	assert.Equal(t, "already-set", existing.UUID)
}

func TestTenantIsActive(t *testing.T) {
	assert.True(t, (&Tenant{Status: TenantStatusActive}).IsActive())
	assert.False(t, (&Tenant{Status: TenantStatusPaused}).IsActive())
	assert.False(t, (&Tenant{Status: TenantStatusSuspended}).IsActive())
}

func TestTenantHasBusinessType(t *testing.T) {
	assert.True(t, (&Tenant{BusinessType: BusinessTypePharmacy}).HasBusinessType())
	assert.False(t, (&Tenant{}).HasBusinessType())
}
