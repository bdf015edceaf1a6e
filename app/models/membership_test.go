package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMembershipIsActive(t *testing.T) {
	assert.True(t, (&Membership{Status: MembershipStatusActive}).IsActive())
	assert.False(t, (&Membership{Status: MembershipStatusInvited}).IsActive())
	assert.False(t, (&Membership{Status: MembershipStatusDisabled}).IsActive())
}

func TestMembershipAccept(t *testing.T) {
	m := &Membership{TenantID: 1, UserID: 7, Status: MembershipStatusInvited}

	m.Accept()

	assert.True(t, m.IsActive())
	assert.NotNil(t, m.JoinedAt)
}
