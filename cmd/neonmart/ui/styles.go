// Package ui provides the visual styling for the neonmart terminal
// storefront. One neon-on-dark palette; the storefront is a night-mode
// product by design, so there is no light variant.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Neon blue against deep slate, matching the storefront
// brand.
var (
	Background = lipgloss.Color("#0f172a") // deep slate
	Foreground = lipgloss.Color("#e2e8f0")
	NeonBlue   = lipgloss.Color("#0ea5e9")
	Muted      = lipgloss.Color("#64748b")
	Border     = lipgloss.Color("#1e293b")
	CardBg     = lipgloss.Color("#14203a")

	// Semantic colors
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Styles holds all the styled components.
type Styles struct {
	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Price    lipgloss.Style
	Rating   lipgloss.Style

	// Product grid
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Skeleton     lipgloss.Style
	Badge        lipgloss.Style
	EmptyNotice  lipgloss.Style

	// Cart panel
	CartPanel lipgloss.Style
	CartLine  lipgloss.Style
	CartTotal lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style

	// Overlays
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	Spinner lipgloss.Style
}

// NewStyles creates the style set.
func NewStyles() Styles {
	card := lipgloss.NewStyle().
		Background(CardBg).
		Foreground(Foreground).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	return Styles{
		Header: lipgloss.NewStyle().
			Background(NeonBlue).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(NeonBlue).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(Muted),

		Price: lipgloss.NewStyle().
			Foreground(NeonBlue).
			Bold(true),

		Rating: lipgloss.NewStyle().
			Foreground(Warning),

		Card: card,

		CardSelected: card.
			BorderForeground(NeonBlue),

		Skeleton: lipgloss.NewStyle().
			Foreground(Border).
			Background(CardBg).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border),

		Badge: lipgloss.NewStyle().
			Background(NeonBlue).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		EmptyNotice: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border),

		CartPanel: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(NeonBlue),

		CartLine: lipgloss.NewStyle().
			Foreground(Foreground),

		CartTotal: lipgloss.NewStyle().
			Foreground(NeonBlue).
			Bold(true),

		ToastSuccess: toast.
			Foreground(Success).
			BorderForeground(Success),

		ToastError: toast.
			Foreground(Destructive).
			BorderForeground(Destructive),

		ToastWarning: toast.
			Foreground(Warning).
			BorderForeground(Warning),

		Modal: lipgloss.NewStyle().
			Background(CardBg).
			Foreground(Foreground).
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(NeonBlue),

		ModalTitle: lipgloss.NewStyle().
			Foreground(NeonBlue).
			Bold(true).
			MarginBottom(1),

		Spinner: lipgloss.NewStyle().
			Foreground(NeonBlue),
	}
}

// Logo returns the neonmart wordmark for the header.
func Logo(s Styles) string {
	return s.Header.Render("⬡ NEONMART")
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
