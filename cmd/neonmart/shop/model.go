// Package shop provides the interactive storefront TUI. The storefront is
// split across files the same way the rest of the repo splits page models:
//   - model.go: types, construction, Init, timer commands
//   - update.go: the Update loop and key handling
//   - view.go: rendering functions
//   - help.go: the markdown help overlay
package shop

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"neonmart/cmd/neonmart/ui"
	"neonmart/internal/auth"
	"neonmart/internal/cart"
	"neonmart/internal/catalog"
	"neonmart/internal/config"
	"neonmart/internal/storage"
	"neonmart/internal/toast"
)

// Phase is the render pipeline's current display mode.
type Phase int

const (
	// PhaseLoading shows skeleton cards with no product data bound.
	PhaseLoading Phase = iota
	// PhasePopulated shows one card per query result.
	PhasePopulated
	// PhaseEmpty shows the "no gear found" placeholder.
	PhaseEmpty
)

// overlayKind selects which modal (if any) sits over the grid.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayQuickView
	overlayAuth
	overlayCheckout
	overlayHelp
)

// eventSink buffers cart storage events between the synchronous cart call
// and the Update step that turns them into toasts.
type eventSink struct {
	pending []cart.Event
}

func (s *eventSink) report(ev cart.Event) {
	s.pending = append(s.pending, ev)
}

func (s *eventSink) drain() []cart.Event {
	out := s.pending
	s.pending = nil
	return out
}

// Model is the Bubble Tea model for the storefront.
type Model struct {
	cfg    config.Config
	styles ui.Styles

	catalog *catalog.Store
	cart    *cart.Store
	session *auth.Session
	toasts  *toast.Queue
	sink    *eventSink

	// Query state and its current result.
	query      catalog.QueryState
	results    []catalog.Product
	categories []string // "all" + the catalog's closed set
	catIdx     int

	// Render lifecycle.
	phase    Phase
	batch    int // render generation; stale stagger ticks carry an old batch
	revealed int // cards whose entrance has begun
	cursor   int // selected card in the grid

	// Cart panel.
	showCart   bool
	cartCursor int

	// Overlays.
	overlay   overlayKind
	quickView catalog.Product
	authBusy  bool
	helpBody  string

	searchInput textinput.Model
	emailInput  textinput.Model
	spinner     spinner.Model

	width  int
	height int
}

// New builds the storefront model. The cart and session are rehydrated from
// durable storage here; any recovery events surface as toasts once the
// settle delay elapses.
func New(cfg config.Config, cat *catalog.Store, store storage.Store) Model {
	sink := &eventSink{}

	cartStore := cart.New(store, sink.report)
	cartStore.Restore()

	session := auth.NewSession(store)
	session.Restore()

	search := textinput.New()
	search.Placeholder = "Search gear..."
	search.Prompt = "⌕ "
	search.CharLimit = 64
	search.Focus()

	email := textinput.New()
	email.Placeholder = "commander@example.com"
	email.Prompt = "✉ "
	email.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.NewStyles().Spinner

	return Model{
		cfg:         cfg,
		styles:      ui.NewStyles(),
		catalog:     cat,
		cart:        cartStore,
		session:     session,
		toasts:      toast.NewQueue(cfg.UI.GetToastTTL()),
		sink:        sink,
		query:       catalog.DefaultQueryState(),
		categories:  append([]string{catalog.CategoryAll}, cat.Categories()...),
		phase:       PhaseLoading,
		searchInput: search,
		emailInput:  email,
		spinner:     sp,
	}
}

// Cart exposes the cart store for the shutdown path and tests.
func (m Model) Cart() *cart.Store {
	return m.cart
}

// CurrentPhase exposes the current lifecycle phase.
func (m Model) CurrentPhase() Phase {
	return m.phase
}

// Init schedules the artificial settle delay that decouples first paint
// from data binding, plus the cursor blink and spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.settleCmd())
}

// =============================================================================
// TIMER COMMANDS
// =============================================================================
// Every suspension point in the storefront is one of these scheduled
// messages; there are no free-standing timers to race against.

func (m Model) settleCmd() tea.Cmd {
	return tea.Tick(m.cfg.UI.GetSettleDelay(), func(time.Time) tea.Msg {
		return settledMsg{}
	})
}

func (m Model) staggerCmd(batch int) tea.Cmd {
	return tea.Tick(m.cfg.UI.GetStaggerDelay(), func(time.Time) tea.Msg {
		return staggerMsg{batch: batch}
	})
}

func (m Model) expireCmd(id string) tea.Cmd {
	return tea.Tick(m.toasts.TTL(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m Model) authCmd(email string) tea.Cmd {
	return tea.Tick(m.cfg.UI.GetAuthRoundTrip(), func(time.Time) tea.Msg {
		return authDoneMsg{email: email}
	})
}
