package shop

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# neonmart

Browse the sector's gear, stock your cart, check out.

## Keys

| Key | Action |
|-----|--------|
| type | search name and description |
| tab | cycle category |
| shift+tab | cycle sort (none / price asc / price desc) |
| ↑ / ↓ | select card |
| enter | add selected to cart |
| ctrl+v | quick scan the selected product |
| ctrl+b | open the cart panel |
| ctrl+k | checkout |
| ctrl+l | connect or disconnect session |
| ctrl+t | dismiss oldest toast |
| esc / ctrl+c | quit |

The cart survives restarts. Search, category and sort reset every launch.
`

// openHelp renders the help overlay, falling back to raw markdown if the
// terminal renderer cannot be built.
func (m *Model) openHelp() {
	if m.helpBody == "" {
		rendered, err := glamour.Render(helpMarkdown, "dark")
		if err != nil {
			rendered = helpMarkdown
		}
		m.helpBody = rendered
	}
	m.overlay = overlayHelp
	m.searchInput.Blur()
}
