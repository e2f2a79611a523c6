package shop

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"neonmart/internal/cart"
	"neonmart/internal/catalog"
	"neonmart/internal/logging"
	"neonmart/internal/toast"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != PhaseLoading && !m.authBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case settledMsg:
		return m.handleSettled()

	case staggerMsg:
		return m.handleStagger(msg)

	case toastExpiredMsg:
		// No-op when the user dismissed the toast first.
		m.toasts.Dismiss(msg.id)
		return m, nil

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// handleSettled ends Loading: bind the query result and resolve to
// Populated or Empty. Cart restore events that accumulated during startup
// surface here so their toasts don't flash under the skeletons.
func (m Model) handleSettled() (tea.Model, tea.Cmd) {
	if m.phase != PhaseLoading {
		return m, nil
	}
	m.phase = PhasePopulated // refresh() settles on Populated vs Empty
	cmds := []tea.Cmd{m.refresh()}
	cmds = append(cmds, m.drainEvents()...)
	logging.Render("settled: phase=%d results=%d", m.phase, len(m.results))
	return m, tea.Batch(cmds...)
}

func (m Model) handleStagger(msg staggerMsg) (tea.Model, tea.Cmd) {
	if msg.batch != m.batch || m.phase != PhasePopulated {
		return m, nil
	}
	if m.revealed < len(m.results) {
		m.revealed++
	}
	if m.revealed < len(m.results) {
		return m, m.staggerCmd(m.batch)
	}
	return m, nil
}

// refresh re-runs the query and rebuilds the whole card list. No diffing:
// catalogs are small and the entrance animation restarts per batch anyway.
func (m *Model) refresh() tea.Cmd {
	m.results = catalog.Query(m.catalog.Products(), m.query)
	m.batch++
	m.cursor = 0

	if m.phase == PhaseLoading {
		return nil
	}
	if len(m.results) == 0 {
		m.phase = PhaseEmpty
		m.revealed = 0
		return nil
	}
	m.phase = PhasePopulated
	if m.cfg.UI.GetStaggerDelay() <= 0 {
		m.revealed = len(m.results)
		return nil
	}
	m.revealed = 1
	if len(m.results) > 1 {
		return m.staggerCmd(m.batch)
	}
	return nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}
	if m.showCart {
		return m.handleCartKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		// Cycle category chip; sentinel "all" sits at index 0.
		m.catIdx = (m.catIdx + 1) % len(m.categories)
		m.query.Category = m.categories[m.catIdx]
		return m, m.refresh()

	case tea.KeyShiftTab:
		m.query.Sort = (m.query.Sort + 1) % 3
		return m, m.refresh()

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if m.phase == PhasePopulated && m.cursor < len(m.results) {
			return m, tea.Batch(m.addToCart(m.results[m.cursor])...)
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+v":
		if m.phase == PhasePopulated && m.cursor < len(m.results) {
			// Quick view always shows the clicked product.
			m.quickView = m.results[m.cursor]
			m.overlay = overlayQuickView
		}
		return m, nil

	case "ctrl+b":
		m.showCart = true
		m.cartCursor = 0
		m.searchInput.Blur()
		return m, nil

	case "ctrl+k":
		return m.handleCheckout()

	case "ctrl+l":
		return m.handleAuthToggle()

	case "ctrl+g":
		m.openHelp()
		return m, nil

	case "ctrl+t":
		return m, m.dismissOldestToast()
	}

	// Everything else is search input; each change is an immediate
	// re-query, debouncing is the input surface's business, not ours.
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.query.Term = m.searchInput.Value()
		return m, tea.Batch(cmd, m.refresh())
	}
	return m, cmd
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeCart()

	case tea.KeyUp:
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cartCursor < m.cart.Count()-1 {
			m.cartCursor++
		}
		return m, nil

	case tea.KeyEnter, tea.KeyDelete, tea.KeyBackspace:
		return m.removeCartEntry(m.cartCursor)
	}

	switch msg.String() {
	case "x":
		return m.removeCartEntry(m.cartCursor)
	case "ctrl+b":
		return m.closeCart()
	case "ctrl+k":
		return m.handleCheckout()
	}
	return m, nil
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if m.authBusy {
			return m, nil // round trip in flight, let it land
		}
		m.overlay = overlayNone
		m.emailInput.Blur()
		m.searchInput.Focus()
		return m, nil
	}

	switch m.overlay {
	case overlayQuickView:
		if msg.Type == tea.KeyEnter || msg.String() == "a" {
			// Same add-to-cart routing as the card trigger.
			cmds := m.addToCart(m.quickView)
			m.overlay = overlayNone
			return m, tea.Batch(cmds...)
		}

	case overlayAuth:
		if m.authBusy {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			email := m.emailInput.Value()
			m.authBusy = true
			return m, tea.Batch(m.spinner.Tick, m.authCmd(email))
		}
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		return m, cmd

	case overlayCheckout:
		if msg.Type == tea.KeyEnter {
			m.overlay = overlayNone
			m.searchInput.Focus()
			return m, m.pushToast("Order relayed to checkout. Stand by.", toast.SeveritySuccess)
		}

	case overlayHelp:
		// Any key closes help.
		m.overlay = overlayNone
		m.searchInput.Focus()
		return m, nil
	}
	return m, nil
}

// =============================================================================
// ACTIONS
// =============================================================================

func (m *Model) addToCart(p catalog.Product) []tea.Cmd {
	m.cart.Add(p)
	cmds := []tea.Cmd{
		m.pushToast(fmt.Sprintf("Deployed %s to cart.", p.Name), toast.SeveritySuccess),
	}
	return append(cmds, m.drainEvents()...)
}

func (m Model) removeCartEntry(index int) (tea.Model, tea.Cmd) {
	if err := m.cart.Remove(index); err != nil {
		// Unreachable through the panel, guarded anyway.
		logging.CartWarn("remove rejected: %v", err)
		return m, nil
	}
	if m.cartCursor >= m.cart.Count() && m.cartCursor > 0 {
		m.cartCursor--
	}
	return m, tea.Batch(m.drainEvents()...)
}

func (m Model) closeCart() (tea.Model, tea.Cmd) {
	m.showCart = false
	m.searchInput.Focus()
	return m, textinput.Blink
}

func (m Model) handleCheckout() (tea.Model, tea.Cmd) {
	if m.cart.Count() == 0 {
		// Aborted, no state change.
		return m, m.pushToast("Cart is empty. Acquire gear first.", toast.SeverityError)
	}
	m.overlay = overlayCheckout
	return m, nil
}

func (m Model) handleAuthToggle() (tea.Model, tea.Cmd) {
	if m.session.LoggedIn() {
		user := m.session.User()
		if err := m.session.Logout(); err != nil {
			logging.Auth("logout cleanup failed: %v", err)
		}
		return m, m.pushToast(fmt.Sprintf("Session disconnected. Farewell, %s.", user), toast.SeveritySuccess)
	}
	m.overlay = overlayAuth
	m.emailInput.SetValue("")
	m.emailInput.Focus()
	m.searchInput.Blur()
	return m, textinput.Blink
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false
	user, err := m.session.Login(msg.email)
	if err != nil {
		return m, m.pushToast("That does not scan as an email address.", toast.SeverityError)
	}
	m.overlay = overlayNone
	m.emailInput.Blur()
	m.searchInput.Focus()
	return m, m.pushToast(fmt.Sprintf("Welcome back, Commander %s", user), toast.SeveritySuccess)
}

// pushToast appends a toast and schedules its auto-dismiss expiry.
func (m Model) pushToast(message string, severity toast.Severity) tea.Cmd {
	t := m.toasts.Push(message, severity)
	return m.expireCmd(t.ID)
}

func (m Model) dismissOldestToast() tea.Cmd {
	active := m.toasts.Active()
	if len(active) == 0 {
		return nil
	}
	m.toasts.Dismiss(active[0].ID)
	return nil
}

// drainEvents converts buffered cart storage events into warning toasts.
func (m Model) drainEvents() []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.sink.drain() {
		switch ev.Kind {
		case cart.EventPersistFailed:
			cmds = append(cmds, m.pushToast("Storage offline. Cart kept for this session.", toast.SeverityWarning))
		case cart.EventRestoredEmpty:
			cmds = append(cmds, m.pushToast("Saved cart was unreadable. Starting empty.", toast.SeverityWarning))
		}
	}
	return cmds
}
