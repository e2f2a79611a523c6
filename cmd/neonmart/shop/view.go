// Package shop provides the interactive storefront TUI.
// This file contains view rendering functions: everything here consumes the
// rendering-agnostic view models from internal/view and only does layout.
package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"neonmart/internal/toast"
	"neonmart/internal/view"
)

const (
	cardWidth   = 38
	gridColumns = 2
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderControls())
	sb.WriteString("\n\n")

	var body string
	switch m.overlay {
	case overlayQuickView:
		body = m.renderQuickView()
	case overlayAuth:
		body = m.renderAuth()
	case overlayCheckout:
		body = m.renderCheckout()
	case overlayHelp:
		body = m.helpBody
	default:
		body = m.renderGrid()
		if m.showCart {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderCartPanel())
		}
	}
	sb.WriteString(body)
	sb.WriteString("\n")

	if toasts := m.renderToasts(); toasts != "" {
		sb.WriteString(toasts)
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderFooter())
	return sb.String()
}

// =============================================================================
// CHROME
// =============================================================================

func (m Model) renderHeader() string {
	greeting := "Guest session"
	if m.session.LoggedIn() {
		greeting = fmt.Sprintf("Hi, Commander %s", m.session.User())
	}
	cartBadge := fmt.Sprintf("⬢ cart %d · %s", m.cart.Count(), view.Price(m.cart.Total()))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Header.Render("⬡ NEONMART"),
		"  ",
		m.styles.Subtitle.Render(greeting),
		"  ",
		m.styles.Price.Render(cartBadge),
	)
}

func (m Model) renderControls() string {
	sort := m.styles.Muted.Render(fmt.Sprintf("sort:%s", m.query.Sort))

	var chips []string
	for i, c := range m.categories {
		if i == m.catIdx {
			chips = append(chips, m.styles.Badge.Render(c))
		} else {
			chips = append(chips, m.styles.Muted.Render(c))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.searchInput.View(),
		"  ",
		strings.Join(chips, " "),
		"  ",
		sort,
	)
}

func (m Model) renderFooter() string {
	if m.overlay != overlayNone {
		return m.styles.Footer.Render("esc close")
	}
	if m.showCart {
		return m.styles.Footer.Render("↑/↓ select · x remove · ctrl+k checkout · esc close")
	}
	return m.styles.Footer.Render(
		"↑/↓ select · enter add · ctrl+v view · tab category · shift+tab sort · ctrl+b cart · ctrl+g help")
}

// =============================================================================
// PRODUCT GRID
// =============================================================================

func (m Model) renderGrid() string {
	switch m.phase {
	case PhaseLoading:
		return m.renderSkeletons()
	case PhaseEmpty:
		return m.styles.EmptyNotice.Width(cardWidth * gridColumns).
			Render("No gear found in this sector.")
	}

	cards := view.Cards(m.results)
	var rendered []string
	for i, c := range cards {
		if i >= m.revealed {
			// Entrance still pending for this position.
			rendered = append(rendered, m.renderSkeletonCard())
			continue
		}
		rendered = append(rendered, m.renderCard(c, i == m.cursor))
	}
	return joinRows(rendered, gridColumns)
}

func (m Model) renderCard(c view.Card, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}

	title := m.styles.Title.Render(c.Title)
	if c.Badge != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, " ", m.styles.Badge.Render(c.Badge))
	}

	desc := c.Description
	if len(desc) > 2*(cardWidth-4) {
		desc = desc[:2*(cardWidth-4)-1] + "…"
	}

	lines := []string{
		title,
		m.styles.Muted.Render("▣ " + c.Image),
		m.styles.Body.Width(cardWidth - 4).Render(desc),
		m.styles.Rating.Render(c.Stars),
		m.styles.Price.Render(c.Price),
	}
	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSkeletons() string {
	header := m.styles.Spinner.Render(m.spinner.View()) +
		m.styles.Muted.Render(" scanning sector inventory...")

	var cards []string
	for i := 0; i < m.cfg.UI.SkeletonCards; i++ {
		cards = append(cards, m.renderSkeletonCard())
	}
	return header + "\n" + joinRows(cards, gridColumns)
}

func (m Model) renderSkeletonCard() string {
	bars := []string{
		strings.Repeat("▒", cardWidth-8),
		strings.Repeat("▒", (cardWidth-4)*7/10),
		strings.Repeat("▒", (cardWidth-4)*4/10),
		strings.Repeat("▒", (cardWidth-4)*3/10),
	}
	return m.styles.Skeleton.Width(cardWidth).Render(strings.Join(bars, "\n"))
}

// joinRows lays cards out in fixed-width rows.
func joinRows(cards []string, columns int) string {
	var rows []string
	for i := 0; i < len(cards); i += columns {
		end := i + columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return strings.Join(rows, "\n")
}

// =============================================================================
// CART PANEL
// =============================================================================

func (m Model) renderCartPanel() string {
	var sb strings.Builder
	sb.WriteString(m.styles.ModalTitle.Render("YOUR CART"))
	sb.WriteString("\n")

	lines := view.CartLines(m.cart.Items())
	if len(lines) == 0 {
		sb.WriteString(m.styles.Muted.Render("Nothing acquired yet."))
		sb.WriteString("\n")
	}
	for _, line := range lines {
		marker := "  "
		style := m.styles.CartLine
		if line.Index == m.cartCursor {
			marker = "▸ "
			style = m.styles.CartLine.Foreground(m.styles.Price.GetForeground())
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s%s  %s", marker, line.Name, line.Price)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.CartTotal.Render(
		fmt.Sprintf("Total %s (%d items)", view.Price(m.cart.Total()), m.cart.Count())))

	return m.styles.CartPanel.Render(sb.String())
}

// =============================================================================
// OVERLAYS
// =============================================================================

func (m Model) renderQuickView() string {
	c := view.CardFrom(m.quickView, 0)

	lines := []string{
		m.styles.ModalTitle.Render("QUICK SCAN · " + c.Title),
		m.styles.Muted.Render("▣ " + c.Image),
		"",
		m.styles.Body.Width(2 * cardWidth).Render(c.Description),
		"",
		m.styles.Rating.Render(c.Stars) + "  " + m.styles.Price.Render(c.Price),
		"",
		m.styles.Muted.Render("enter add to cart · esc close"),
	}
	return m.styles.Modal.Render(strings.Join(lines, "\n"))
}

func (m Model) renderAuth() string {
	status := m.styles.Muted.Render("enter connect · esc cancel")
	if m.authBusy {
		status = m.styles.Spinner.Render(m.spinner.View()) + m.styles.Muted.Render(" authenticating...")
	}

	lines := []string{
		m.styles.ModalTitle.Render("CONNECT SESSION"),
		m.emailInput.View(),
		"",
		status,
	}
	return m.styles.Modal.Render(strings.Join(lines, "\n"))
}

func (m Model) renderCheckout() string {
	var sb strings.Builder
	sb.WriteString(m.styles.ModalTitle.Render("CHECKOUT MANIFEST"))
	sb.WriteString("\n")
	for _, line := range view.CartLines(m.cart.Items()) {
		sb.WriteString(fmt.Sprintf("%s  %s\n", line.Name, line.Price))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.CartTotal.Render("Total " + view.Price(m.cart.Total())))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("enter confirm · esc back"))
	return m.styles.Modal.Render(sb.String())
}

func (m Model) renderToasts() string {
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}

	var rendered []string
	for _, t := range active {
		switch t.Severity {
		case toast.SeverityError:
			rendered = append(rendered, m.styles.ToastError.Render("⊘ "+t.Message))
		case toast.SeverityWarning:
			rendered = append(rendered, m.styles.ToastWarning.Render("⚠ "+t.Message))
		default:
			rendered = append(rendered, m.styles.ToastSuccess.Render("✓ "+t.Message))
		}
	}
	return strings.Join(rendered, "\n")
}
