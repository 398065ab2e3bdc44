package thread

import (
	"strings"
	"time"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threadview/internal/core/identity"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/pkg/timeutil"
)

// IdentityFacets selects which identity facets render. Each facet is
// independent so variants can hide any of them.
type IdentityFacets struct {
	Avatar    bool
	Name      bool
	Tier      bool
	Role      bool
	Location  bool
	Timestamp bool

	// AbsoluteTime switches the timestamp facet from relative ("5m ago")
	// to absolute formatting.
	AbsoluteTime bool
}

// DefaultFacets shows everything with relative timestamps.
func DefaultFacets() IdentityFacets {
	return IdentityFacets{
		Avatar:    true,
		Name:      true,
		Tier:      true,
		Role:      true,
		Location:  true,
		Timestamp: true,
	}
}

func tierStyle(t identity.Tier) lipgloss.Style {
	switch t {
	case identity.TierExpert:
		return styles.TierExpertStyle
	case identity.TierElite:
		return styles.TierEliteStyle
	case identity.TierPremium:
		return styles.TierPremiumStyle
	case identity.TierTrusted:
		return styles.TierTrustedStyle
	default:
		return styles.TierBasicStyle
	}
}

// renderIdentity renders the identity header line for a reply. The tier is
// derived fresh from the snapshot on every call; nothing identity-related
// is cached between renders.
func renderIdentity(r *corethread.Reply, facets IdentityFacets, now time.Time) string {
	var parts []string

	if facets.Avatar {
		// Terminal rendering has no image pipeline; the initial is the
		// avatar fallback the error-handling rules require anyway.
		parts = append(parts, styles.AvatarInitialStyle.Render(identity.AvatarInitial(r.User)))
	}

	if facets.Name {
		parts = append(parts, styles.AuthorNameStyle.Render(identity.DisplayName(r.User)))
	}

	if facets.Tier {
		tier := identity.VerificationTier(r.User)
		label := string(tier)
		if r.User.Verified {
			label = styles.IconVerified + " " + label
		}
		parts = append(parts, tierStyle(tier).Render(label))
	}

	if facets.Role {
		if label := identity.RoleLabel(r.User.Role); label != "" {
			parts = append(parts, styles.AuthorRoleStyle.Render(label))
		}
	}

	if facets.Location && r.User.Location != "" {
		parts = append(parts, styles.TextMutedStyle.Render(r.User.Location))
	}

	if facets.Timestamp {
		var ts string
		if facets.AbsoluteTime {
			ts = timeutil.Absolute(r.CreatedAt)
		} else {
			ts = timeutil.Relative(r.CreatedAt, now)
		}
		if r.Edited {
			ts += " " + styles.IconEdited + " edited"
		}
		parts = append(parts, styles.TimestampStyle.Render(ts))
	}

	line := strings.Join(parts, " · ")

	var flags []string
	if r.Pinned {
		flags = append(flags, styles.PinnedStyle.Render(styles.IconPinned))
	}
	if r.Locked {
		flags = append(flags, styles.LockedStyle.Render(styles.IconLocked))
	}
	if len(flags) > 0 {
		line += "  " + strings.Join(flags, " ")
	}

	return line
}
