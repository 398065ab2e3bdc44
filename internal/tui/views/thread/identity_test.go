package thread

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"

	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/pkg/tuitest"
)

var renderClock = time.Date(2026, time.February, 12, 15, 9, 0, 0, time.UTC)

func TestRenderIdentity_Default(t *testing.T) {
	r := &corethread.Reply{
		CreatedAt: renderClock.Add(-5 * time.Minute),
		User:      corethread.UserIdentity{DisplayName: "claire", TrustScore: 72},
	}

	out := tuitest.StripANSI(renderIdentity(r, DefaultFacets(), renderClock))
	golden.RequireEqual(t, []byte(out))
}

func TestRenderIdentity_AbsoluteTime(t *testing.T) {
	r := &corethread.Reply{
		CreatedAt: time.Date(2026, time.February, 12, 15, 4, 0, 0, time.UTC),
		User: corethread.UserIdentity{
			DisplayName: "bo",
			TrustScore:  96,
			Role:        corethread.RoleMerchant,
			Location:    "Lisbon",
		},
	}

	facets := DefaultFacets()
	facets.AbsoluteTime = true
	out := tuitest.StripANSI(renderIdentity(r, facets, renderClock))
	golden.RequireEqual(t, []byte(out))
}

func TestRenderIdentity_AnonymousFallbacks(t *testing.T) {
	r := &corethread.Reply{CreatedAt: renderClock}

	out := tuitest.StripANSI(renderIdentity(r, DefaultFacets(), renderClock))
	assert.Contains(t, out, "?")
	assert.Contains(t, out, "anonymous")
	assert.Contains(t, out, "just now")
}

func TestRenderIdentity_FacetsHide(t *testing.T) {
	r := &corethread.Reply{
		CreatedAt: renderClock,
		User:      corethread.UserIdentity{DisplayName: "claire", TrustScore: 72},
	}

	out := tuitest.StripANSI(renderIdentity(r, IdentityFacets{Name: true}, renderClock))
	assert.Equal(t, "claire", out)
}
