// Package thread renders a threaded reply tree and runs the optimistic
// interaction protocol against the surrounding host. The host owns all
// durable state; everything in this package is session-scoped presentation
// state keyed by reply ID.
package thread

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/colonyops/threadview/internal/core/analytics"
	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/content"
	"github.com/colonyops/threadview/internal/core/host"
	"github.com/colonyops/threadview/internal/core/identity"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/internal/tui/components"
	"github.com/colonyops/threadview/internal/tui/notify"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// lineRange is the half-open display-line span one item occupies in the
// rendered viewport content.
type lineRange struct {
	start, end int
}

func (lr lineRange) lines() int { return lr.end - lr.start }

// Options carries the per-session parameters for a thread view.
type Options struct {
	Title         string
	ViewerID      string
	ViewerIsStaff bool
	Query         string
}

// View is the threaded reply browser. It flattens the reply forest into
// items, renders them into a viewport, and drives every host interaction.
type View struct {
	cfg       *config.Config
	host      host.Host
	analytics analytics.Sink
	notify    *notify.Bus
	log       zerolog.Logger

	title         string
	roots         []*corethread.Reply
	rootStack     [][]*corethread.Reply
	viewerID      string
	viewerIsStaff bool
	query         string

	collapsed    map[string]bool
	interactions *interactionStore
	bodies       *bodyStore

	// pending maps each in-flight mutation slot to the pre-action snapshot
	// used for rollback.
	pending map[pendingKey]InteractionState

	// gens tags host results by mount generation; bumping a reply's
	// generation orphans every result still in flight for it.
	gens map[string]int

	items      []NodeItem
	lineRanges []lineRange
	cursor     int

	viewport viewport.Model
	width    int
	height   int
	now      time.Time

	editModal   *EditModal
	deleteModal *DeleteModal
	reportModal *ReportModal

	// confirmModal gates keybindings configured with a confirm prompt;
	// confirmAction is dispatched once the user accepts.
	confirmModal  *components.ConfirmModal
	confirmAction string

	// Submit latches so a modal's in-flight state issues exactly one host
	// call.
	editSubmitted   bool
	deleteSubmitted bool
	reportSubmitted bool
}

// New creates a thread view over the given reply forest.
func New(cfg *config.Config, h host.Host, sink analytics.Sink, bus *notify.Bus, log zerolog.Logger, roots []*corethread.Reply, opts Options) *View {
	if sink == nil {
		sink = analytics.Nop{}
	}
	v := &View{
		cfg:           cfg,
		host:          h,
		analytics:     sink,
		notify:        bus,
		log:           log.With().Str("cmp", "thread").Logger(),
		title:         opts.Title,
		roots:         roots,
		viewerID:      opts.ViewerID,
		viewerIsStaff: opts.ViewerIsStaff,
		query:         opts.Query,
		collapsed:     make(map[string]bool),
		interactions:  newInteractionStore(),
		bodies:        newBodyStore(),
		pending:       make(map[pendingKey]InteractionState),
		gens:          make(map[string]int),
		viewport:      viewport.New(),
		now:           timeNow(),
	}
	return v
}

// Init starts the relative-timestamp clock.
func (v *View) Init() tea.Cmd {
	return relativeTickCmd(v.tickInterval())
}

func (v *View) tickInterval() time.Duration {
	return time.Duration(v.cfg.Thread.RelativeTickSeconds) * time.Second
}

// SetSize resizes the view. Body heights depend on wrap width, so overflow
// detection reruns on every resize.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	v.viewport = viewport.New(viewport.WithWidth(width), viewport.WithHeight(contentHeight))
	v.rebuild()
}

func (v *View) gen(replyID string) int { return v.gens[replyID] }

// ModalActive reports whether a modal currently owns key input. The shell
// uses this to keep global quit keys from firing inside text fields.
func (v *View) ModalActive() bool { return v.modalActive() }

// cursorReply returns the reply under the cursor, nil when the list is
// empty.
func (v *View) cursorReply() *corethread.Reply {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return nil
	}
	return v.items[v.cursor].Reply
}

func (v *View) cursorItem() *NodeItem {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return nil
	}
	return &v.items[v.cursor]
}

// Update handles one message.
func (v *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return nil

	case relativeTickMsg:
		v.now = time.Time(msg)
		v.rerender()
		return relativeTickCmd(v.tickInterval())

	case mutationResultMsg:
		cmd := v.handleMutationResult(msg)
		v.rerender()
		return cmd

	case translateResultMsg:
		v.handleTranslateResult(msg)
		return nil

	case copiedResetMsg:
		if msg.gen == v.gen(msg.replyID) {
			v.bodies.Get(msg.replyID).copied = false
			v.rerender()
		}
		return nil

	case editResultMsg:
		return v.handleEditResult(msg)

	case deleteResultMsg:
		return v.handleDeleteResult(msg)

	case reportResultMsg:
		return v.handleReportResult(msg)

	case autosaveTickMsg:
		m := v.editModal
		if m == nil || m.reply.ID != msg.replyID || !m.AutosaveReady(msg.seq) {
			return nil
		}
		m.saving = true
		return editCmd(v.host, m.reply.ID, m.Draft(), m.Reason(), true)

	case editLimitTickMsg:
		m := v.editModal
		if m == nil || m.reply.ID != msg.replyID {
			return nil
		}
		if m.TickLimit() {
			return editLimitTickCmd(msg.replyID)
		}
		return nil

	case tea.KeyPressMsg:
		if v.modalActive() {
			return v.updateModal(msg)
		}
		return v.handleKey(msg)
	}

	if v.modalActive() {
		return v.updateModal(msg)
	}
	return nil
}

func (v *View) handleTranslateResult(msg translateResultMsg) {
	if msg.gen != v.gen(msg.replyID) {
		return
	}
	bs := v.bodies.Get(msg.replyID)
	bs.translating = false
	if msg.err != nil {
		v.log.Warn().Str("reply_id", msg.replyID).Err(msg.err).Msg("translate failed")
		v.analytics.Emit(analytics.EventReplyTranslateFail, analytics.Payload{"reply_id": msg.replyID})
		v.notify.Errorf("translation failed: %v", msg.err)
		v.rerender()
		return
	}
	bs.translated = true
	bs.translatedText = msg.text
	v.analytics.Emit(analytics.EventReplyTranslate, analytics.Payload{
		"reply_id": msg.replyID,
		"lang":     v.cfg.Thread.TranslateTo,
	})
	v.rerender()
}

func (v *View) handleKey(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "j", "down":
		v.moveCursor(1)
		return nil
	case "k", "up":
		v.moveCursor(-1)
		return nil
	case "g":
		v.cursor = 0
		v.scrollToCursor()
		v.visibilityPass()
		return nil
	case "G":
		v.cursor = len(v.items) - 1
		v.scrollToCursor()
		v.visibilityPass()
		return nil
	case "backspace":
		v.popRoot()
		return nil
	case "]":
		v.cycleSegment(1)
		return nil
	case "[":
		v.cycleSegment(-1)
		return nil
	case "space":
		return v.activateSegment()
	}

	kb, ok := v.cfg.Keybindings[key.String()]
	if !ok {
		return nil
	}
	if kb.Confirm != "" {
		m := components.NewConfirmModal(kb.Confirm)
		v.confirmModal = &m
		v.confirmAction = kb.Action
		return nil
	}
	return v.dispatchAction(kb.Action)
}

func (v *View) dispatchAction(action string) tea.Cmd {
	item := v.cursorItem()
	if item == nil {
		return nil
	}
	r := item.Reply

	switch action {
	case config.ActionLike, config.ActionDislike, config.ActionBookmark,
		config.ActionShare, config.ActionHelpful:
		if item.Kind != ItemReply {
			return nil
		}
		cmd := v.startInteraction(r, action)
		v.rerender()
		return cmd

	case config.ActionEdit:
		if item.Kind != ItemReply {
			return nil
		}
		return v.openEdit(r)

	case config.ActionDelete:
		if item.Kind != ItemReply {
			return nil
		}
		v.openDelete(r)
		return nil

	case config.ActionReport:
		if item.Kind != ItemReply {
			return nil
		}
		v.openReport(r)
		return nil

	case config.ActionTranslate:
		return v.toggleTranslate(r)

	case config.ActionCopy:
		return v.copyContent(r)

	case config.ActionCollapse:
		v.toggleCollapse(r)
		return nil

	case config.ActionExpandBody:
		v.toggleExpandBody(r)
		return nil

	case config.ActionShowThread:
		if item.Kind == ItemShowThread {
			v.pushRoot(r)
		} else if item.Kind == ItemCollapsedSummary {
			v.toggleCollapse(r)
		}
		return nil

	case config.ActionViewProfile:
		v.host.ViewProfile(r.User.ID)
		v.analytics.Emit(analytics.EventReplyProfileView, analytics.Payload{"user_id": r.User.ID})
		return nil

	case config.ActionOpenUser:
		v.host.UserClicked(r.User.ID)
		v.analytics.Emit(analytics.EventReplyUserClick, analytics.Payload{"user_id": r.User.ID})
		return nil

	case config.ActionFollowUser:
		if v.ownContent(r) {
			return nil
		}
		v.host.Follow(r.User.ID)
		v.analytics.Emit(analytics.EventReplyUserFollow, analytics.Payload{"user_id": r.User.ID})
		v.notify.Infof("following %s", identity.DisplayName(r.User))
		return nil

	case config.ActionBlockUser:
		if v.ownContent(r) {
			return nil
		}
		v.host.Block(r.User.ID)
		v.analytics.Emit(analytics.EventReplyUserBlock, analytics.Payload{"user_id": r.User.ID})
		v.notify.Infof("blocked %s", identity.DisplayName(r.User))
		return nil
	}
	return nil
}

// toggleTranslate flips the original/translated toggle. While a translation
// is in flight the toggle is inert.
func (v *View) toggleTranslate(r *corethread.Reply) tea.Cmd {
	bs := v.bodies.Get(r.ID)
	if bs.translating {
		return nil
	}
	if bs.translated {
		bs.translated = false
		v.rerender()
		return nil
	}
	if bs.translatedText != "" {
		// Cached from an earlier round trip; no host call needed.
		bs.translated = true
		v.rerender()
		return nil
	}
	bs.translating = true
	v.rerender()
	return translateCmd(v.host, r.ID, v.cfg.Thread.TranslateTo, v.gen(r.ID))
}

func (v *View) copyContent(r *corethread.Reply) tea.Cmd {
	if err := clipboard.WriteAll(r.Content); err != nil {
		v.log.Warn().Str("reply_id", r.ID).Err(err).Msg("clipboard write failed")
		v.notify.Errorf("copy failed: %v", err)
		return nil
	}
	bs := v.bodies.Get(r.ID)
	bs.copied = true
	v.analytics.Emit(analytics.EventReplyCopy, analytics.Payload{"reply_id": r.ID})
	v.rerender()
	return copiedResetCmd(r.ID, v.gen(r.ID))
}

func (v *View) toggleCollapse(r *corethread.Reply) {
	if len(r.Children) == 0 && !v.collapsed[r.ID] {
		return
	}
	v.collapsed[r.ID] = !v.collapsed[r.ID]
	v.analytics.Emit(analytics.EventReplyCollapse, analytics.Payload{
		"reply_id":  r.ID,
		"collapsed": v.collapsed[r.ID],
	})
	v.rebuild()
}

func (v *View) toggleExpandBody(r *corethread.Reply) {
	bs := v.bodies.Get(r.ID)
	if !bs.overflows && !bs.expanded {
		return
	}
	bs.expanded = !bs.expanded
	if bs.expanded {
		v.analytics.Emit(analytics.EventReplyExpand, analytics.Payload{"reply_id": r.ID})
	}
	v.rerender()
}

// pushRoot re-roots the view at the given reply so its subtree renders
// from depth zero. The previous forest goes on the breadcrumb stack.
func (v *View) pushRoot(r *corethread.Reply) {
	v.rootStack = append(v.rootStack, v.roots)
	v.roots = []*corethread.Reply{r}
	v.cursor = 0
	v.analytics.Emit(analytics.EventThreadShowMore, analytics.Payload{"reply_id": r.ID})
	v.rebuild()
	v.viewport.GotoTop()
	v.visibilityPass()
}

func (v *View) popRoot() {
	if len(v.rootStack) == 0 {
		return
	}
	v.roots = v.rootStack[len(v.rootStack)-1]
	v.rootStack = v.rootStack[:len(v.rootStack)-1]
	v.cursor = 0
	v.rebuild()
	v.viewport.GotoTop()
	v.visibilityPass()
}

func (v *View) cycleSegment(delta int) {
	r := v.cursorReply()
	if r == nil {
		return
	}
	bs := v.bodies.Get(r.ID)
	segs := interactiveSegments(bs.segments)
	if len(segs) == 0 {
		return
	}
	bs.focusSegment = (bs.focusSegment + delta + len(segs) + 1) % (len(segs) + 1)
	if bs.focusSegment == len(segs) {
		bs.focusSegment = -1
	}
	v.rerender()
}

// activateSegment fires the navigation callback for the focused segment.
func (v *View) activateSegment() tea.Cmd {
	r := v.cursorReply()
	if r == nil {
		return nil
	}
	bs := v.bodies.Get(r.ID)
	segs := interactiveSegments(bs.segments)
	if bs.focusSegment < 0 || bs.focusSegment >= len(segs) {
		return nil
	}

	seg := segs[bs.focusSegment]
	switch seg.Kind {
	case content.SegmentMention:
		v.host.MentionClicked(seg.UserID)
		v.analytics.Emit(analytics.EventReplyMentionClick, analytics.Payload{
			"reply_id": r.ID, "user_id": seg.UserID,
		})
	case content.SegmentHashtag:
		v.host.HashtagClicked(seg.Tag)
		v.analytics.Emit(analytics.EventReplyHashtagClick, analytics.Payload{
			"reply_id": r.ID, "tag": seg.Tag,
		})
	case content.SegmentLink:
		v.host.LinkClicked(seg.LinkID, seg.URL)
		v.analytics.Emit(analytics.EventReplyLinkClick, analytics.Payload{
			"reply_id": r.ID, "link_id": seg.LinkID,
		})
	}
	return nil
}

func (v *View) moveCursor(delta int) {
	if len(v.items) == 0 {
		return
	}
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	v.scrollToCursor()
	v.visibilityPass()
}

// scrollToCursor keeps the cursor item's lines inside the viewport.
func (v *View) scrollToCursor() {
	if v.cursor < 0 || v.cursor >= len(v.lineRanges) {
		return
	}
	lr := v.lineRanges[v.cursor]
	top := v.viewport.YOffset()
	visible := v.viewport.VisibleLineCount()
	if lr.start < top {
		v.viewport.SetYOffset(lr.start)
	} else if lr.end > top+visible {
		v.viewport.SetYOffset(lr.end - visible)
	}
}

// rebuild re-flattens the forest and re-renders everything, then reconciles
// which replies are still mounted.
func (v *View) rebuild() {
	v.items = Flatten(v.roots, FlattenOptions{
		MaxDepth:      v.cfg.Thread.MaxDepth,
		Collapsed:     v.collapsed,
		ViewerIsStaff: v.viewerIsStaff,
	})
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.syncMounted()
	v.rerender()
	v.visibilityPass()
}

// syncMounted discards session state for replies no longer in the item
// list and bumps their generation so stale host results get dropped.
func (v *View) syncMounted() {
	mounted := make(map[string]bool, len(v.items))
	for _, item := range v.items {
		if item.Kind == ItemReply {
			mounted[item.Reply.ID] = true
		}
	}
	for id := range v.bodies.states {
		if !mounted[id] {
			v.bodies.Drop(id)
			v.gens[id]++
		}
	}
}

// rerender redraws viewport content from the current items without
// re-flattening.
func (v *View) rerender() {
	var lines []string
	v.lineRanges = make([]lineRange, len(v.items))

	for i, item := range v.items {
		start := len(lines)
		lines = append(lines, v.renderItem(i, item)...)
		v.lineRanges[i] = lineRange{start: start, end: len(lines)}
	}

	v.viewport.SetContent(strings.Join(lines, "\n"))
}

// visibilityPass finds items whose visible fraction crosses the threshold
// and runs their deferred mount work: content processing and the one-shot
// view report. Processing can change item heights, so content re-renders
// when anything new mounted.
func (v *View) visibilityPass() {
	top := v.viewport.YOffset()
	bottom := top + v.viewport.VisibleLineCount()
	mountedAny := false

	for i, item := range v.items {
		if item.Kind != ItemReply || i >= len(v.lineRanges) {
			continue
		}
		lr := v.lineRanges[i]
		if lr.lines() == 0 {
			continue
		}
		overlap := min(lr.end, bottom) - max(lr.start, top)
		if overlap <= 0 {
			continue
		}
		if float64(overlap)/float64(lr.lines()) < v.cfg.Thread.VisibleFraction {
			continue
		}

		bs := v.bodies.Get(item.Reply.ID)
		if !bs.processed {
			bs.segments = content.Segments(item.Reply.Content, v.query, item.Reply.Annotations)
			bs.metrics = content.Measure(item.Reply.Content)
			bs.processed = true
			mountedAny = true
		}
		if !bs.viewed {
			bs.viewed = true
			v.analytics.Emit(analytics.EventReplyView, analytics.Payload{"reply_id": item.Reply.ID})
		}
	}

	if mountedAny {
		v.rerender()
	}
}

func (v *View) indentPrefix(depth int) string {
	if depth == 0 {
		return ""
	}
	return strings.Repeat(styles.IndentGuideStyle.Render("│ "), depth)
}

func (v *View) renderItem(idx int, item NodeItem) []string {
	indent := v.indentPrefix(item.IndentDepth)
	selected := idx == v.cursor

	marker := "  "
	if selected {
		marker = styles.SelectedItemStyle.Render("▌ ")
	}

	switch item.Kind {
	case ItemCollapsedSummary:
		line := styles.CollapsedSummary.Render(fmt.Sprintf("▸ %s · %d repl%s hidden",
			identity.DisplayName(item.Reply.User), item.DescendantCount+1, pluralIES(item.DescendantCount+1)))
		return []string{marker + indent + line, ""}

	case ItemShowThread:
		line := styles.ShowThreadStyle.Render(fmt.Sprintf("%s show thread (%d more)",
			styles.IconReply, item.DescendantCount))
		return []string{marker + indent + line, ""}
	}

	r := item.Reply
	bs := v.bodies.Get(r.ID)

	bodyWidth := v.width - lipgloss.Width(indent) - 4
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var lines []string
	header := renderIdentity(r, DefaultFacets(), v.now)
	if r.Highlighted {
		header = styles.HighlightedStyle.Render("★") + " " + header
	}
	lines = append(lines, marker+indent+header)

	for _, bl := range strings.Split(renderBody(r, bs, v.cfg.Thread.CollapseHeight, bodyWidth), "\n") {
		lines = append(lines, "  "+indent+bl)
	}

	lines = append(lines, "  "+indent+v.renderActions(r))
	lines = append(lines, "")
	return lines
}

// View renders the full thread view: header, viewport, and any active
// modal centered over it.
func (v *View) View() string {
	header := styles.ModalTitleStyle.Render(v.title)
	if len(v.rootStack) > 0 {
		header += styles.TextMutedStyle.Render(fmt.Sprintf("  (thread · backspace to go back · depth %d)", len(v.rootStack)))
	}

	body := v.viewport.View()
	out := lipgloss.JoinVertical(lipgloss.Left, header, body)

	if m := v.activeModal(); m != nil {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, m.View())
	}
	return out
}
