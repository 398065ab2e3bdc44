// Package identity derives presentation facets from user identity
// snapshots. Tiers are computed fresh at render time from the snapshot's
// scores and are never cached on a record.
package identity

import (
	"strings"

	"github.com/colonyops/threadview/internal/core/thread"
)

// Tier is the derived verification tier shown next to an author's name.
type Tier string

const (
	TierExpert  Tier = "expert"
	TierElite   Tier = "elite"
	TierPremium Tier = "premium"
	TierTrusted Tier = "trusted"
	TierBasic   Tier = "basic"
)

// VerificationTier derives the display tier from trust and reputation
// scores. Reputation of 1000+ overrides the trust thresholds entirely.
func VerificationTier(u thread.UserIdentity) Tier {
	if u.ReputationScore >= 1000 {
		return TierExpert
	}
	switch {
	case u.TrustScore >= 95:
		return TierElite
	case u.TrustScore >= 85:
		return TierPremium
	case u.TrustScore >= 70:
		return TierTrusted
	default:
		return TierBasic
	}
}

// DisplayName returns the user's display name, or "anonymous" when the
// identity carries none.
func DisplayName(u thread.UserIdentity) string {
	name := strings.TrimSpace(u.DisplayName)
	if name == "" {
		return "anonymous"
	}
	return name
}

// AvatarInitial returns the uppercase fallback initial rendered when the
// avatar image is unavailable. Anonymous or empty names fall back to "?".
func AvatarInitial(u thread.UserIdentity) string {
	name := strings.TrimSpace(u.DisplayName)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// RoleLabel returns the short label shown for privileged roles. Plain users
// get no label.
func RoleLabel(r thread.Role) string {
	switch r {
	case thread.RoleModerator:
		return "MOD"
	case thread.RoleAdmin:
		return "ADMIN"
	case thread.RoleMerchant:
		return "SELLER"
	default:
		return ""
	}
}
