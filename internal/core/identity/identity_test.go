package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/threadview/internal/core/thread"
)

func TestVerificationTier(t *testing.T) {
	tests := []struct {
		name string
		user thread.UserIdentity
		want Tier
	}{
		{"reputation overrides trust", thread.UserIdentity{TrustScore: 10, ReputationScore: 1000}, TierExpert},
		{"reputation just below cutoff", thread.UserIdentity{TrustScore: 96, ReputationScore: 999}, TierElite},
		{"elite at 95", thread.UserIdentity{TrustScore: 95}, TierElite},
		{"premium at 85", thread.UserIdentity{TrustScore: 85}, TierPremium},
		{"premium below elite", thread.UserIdentity{TrustScore: 94.9}, TierPremium},
		{"trusted at 70", thread.UserIdentity{TrustScore: 70}, TierTrusted},
		{"basic below 70", thread.UserIdentity{TrustScore: 69.9}, TierBasic},
		{"zero value user", thread.UserIdentity{}, TierBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerificationTier(tt.user))
		})
	}
}

func TestAvatarInitial(t *testing.T) {
	tests := []struct {
		name string
		user thread.UserIdentity
		want string
	}{
		{"basic name", thread.UserIdentity{DisplayName: "claire"}, "C"},
		{"already uppercase", thread.UserIdentity{DisplayName: "Claire"}, "C"},
		{"multibyte rune", thread.UserIdentity{DisplayName: "ólafur"}, "Ó"},
		{"empty name falls back", thread.UserIdentity{}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvatarInitial(tt.user))
		})
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "MOD", RoleLabel(thread.RoleModerator))
	assert.Equal(t, "ADMIN", RoleLabel(thread.RoleAdmin))
	assert.Equal(t, "SELLER", RoleLabel(thread.RoleMerchant))
	assert.Equal(t, "", RoleLabel(thread.RoleUser))
}
