package thread

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/threadview/internal/core/analytics"
	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
)

// actionEvents maps config actions to their analytics events.
var actionEvents = map[string]string{
	config.ActionLike:     analytics.EventReplyLike,
	config.ActionDislike:  analytics.EventReplyDislike,
	config.ActionBookmark: analytics.EventReplyBookmark,
	config.ActionShare:    analytics.EventReplyShare,
	config.ActionHelpful:  analytics.EventReplyHelpfulVote,
}

func actionKind(action string) ActionKind {
	switch action {
	case config.ActionLike, config.ActionDislike:
		return ActionVote
	case config.ActionBookmark:
		return ActionBookmark
	case config.ActionShare:
		return ActionShare
	default:
		return ActionHelpful
	}
}

// startInteraction runs the optimistic protocol for one counter action:
// gate, snapshot, apply locally, then propose to the host. At most one call
// per (reply, kind) slot is in flight; like and dislike share the vote slot
// because they mutate the same exclusive pair.
func (v *View) startInteraction(r *corethread.Reply, action string) tea.Cmd {
	// Voting on your own content is silently inert, matching the rendered
	// action bar which hides these affordances for own replies.
	if v.ownContent(r) && action != config.ActionShare {
		return nil
	}

	kind := actionKind(action)
	key := pendingKey{replyID: r.ID, kind: kind}
	if _, inFlight := v.pending[key]; inFlight {
		return nil
	}

	st := v.interactions.Get(r)
	snap := st.snapshot()

	var call func(context.Context) error
	switch action {
	case config.ActionLike:
		st.ToggleLike()
		call = func(ctx context.Context) error { return v.host.Like(ctx, r.ID) }
	case config.ActionDislike:
		st.ToggleDislike()
		call = func(ctx context.Context) error { return v.host.Dislike(ctx, r.ID) }
	case config.ActionBookmark:
		st.ToggleBookmark()
		call = func(ctx context.Context) error { return v.host.Bookmark(ctx, r.ID) }
	case config.ActionShare:
		st.RecordShare()
		call = func(ctx context.Context) error { return v.host.Share(ctx, r.ID) }
	case config.ActionHelpful:
		st.ToggleHelpful()
		helpful := st.VotedHelpful
		call = func(ctx context.Context) error { return v.host.HelpfulVote(ctx, r.ID, helpful) }
	default:
		return nil
	}

	v.pending[key] = snap
	return mutationCmd(r.ID, kind, action, v.gen(r.ID), call)
}

// handleMutationResult reconciles a host response with the optimistic
// state. Acceptance keeps the local state and emits the analytics event;
// rejection rolls back to the pre-action snapshot and surfaces the error.
// Results for unmounted generations are dropped outright: the node's state
// was discarded, there is nothing to reconcile.
func (v *View) handleMutationResult(msg mutationResultMsg) tea.Cmd {
	key := pendingKey{replyID: msg.replyID, kind: msg.kind}
	snap, ok := v.pending[key]
	delete(v.pending, key)

	if msg.gen != v.gen(msg.replyID) {
		return nil
	}

	if msg.err != nil {
		if ok {
			if st, seeded := v.interactions.states[msg.replyID]; seeded {
				st.restore(snap)
			}
		}
		v.log.Warn().Str("reply_id", msg.replyID).Str("action", msg.action).
			Err(msg.err).Msg("interaction rejected")
		v.notify.Errorf("%s failed: %v", msg.action, msg.err)
		return nil
	}

	if event, ok := actionEvents[msg.action]; ok {
		v.analytics.Emit(event, analytics.Payload{"reply_id": msg.replyID})
	}
	return nil
}

func (v *View) ownContent(r *corethread.Reply) bool {
	return v.viewerID != "" && r.User.ID == v.viewerID
}

// actionEntry describes one rendered action affordance.
type actionEntry struct {
	key    string
	icon   string
	count  int
	active bool
	kind   ActionKind
}

// renderActions renders the interaction footer for one reply. Own replies
// get edit/delete affordances instead of vote affordances; pending slots
// render dimmed to show the unconfirmed state.
func (v *View) renderActions(r *corethread.Reply) string {
	st := v.interactions.Get(r)

	var parts []string
	render := func(e actionEntry) {
		label := fmt.Sprintf("%s %s", e.icon, e.key)
		if e.count > 0 {
			label += styles.CounterStyle.Render(fmt.Sprintf(" %d", e.count))
		}
		style := styles.ActionStyle
		if _, inFlight := v.pending[pendingKey{replyID: r.ID, kind: e.kind}]; inFlight {
			style = styles.ActionPendingStyle
		} else if e.active {
			style = styles.ActionActiveStyle
		}
		parts = append(parts, style.Render(label))
	}

	if !v.ownContent(r) {
		render(actionEntry{key: "l", icon: styles.IconLike, count: st.Counters.Likes, active: st.IsLiked, kind: ActionVote})
		render(actionEntry{key: "L", icon: styles.IconDislike, count: st.Counters.Dislikes, active: st.IsDisliked, kind: ActionVote})
		render(actionEntry{key: "b", icon: styles.IconBookmark, active: st.IsBookmarked, kind: ActionBookmark})
		render(actionEntry{key: "h", icon: styles.IconHelpful, count: st.Counters.Helpful, active: st.VotedHelpful, kind: ActionHelpful})
	} else {
		parts = append(parts, styles.ActionStyle.Render(styles.IconEdit+" e"))
		parts = append(parts, styles.ActionStyle.Render(styles.IconDelete+" d"))
	}
	render(actionEntry{key: "s", icon: styles.IconShare, count: st.Counters.Shares, kind: ActionShare})
	if !v.ownContent(r) {
		parts = append(parts, styles.ActionStyle.Render(styles.IconReport+" R"))
	}

	return strings.Join(parts, "  ")
}
