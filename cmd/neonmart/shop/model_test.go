package shop

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonmart/internal/cart"
	"neonmart/internal/catalog"
	"neonmart/internal/config"
	"neonmart/internal/storage"
	"neonmart/internal/toast"
)

const fixtureJSON = `[
	{"id":1,"name":"Pro Wireless Earbuds","category":"Earbuds","price":29.99,
	 "image":"earbuds.png","rating":4.5,"desc":"Noise-canceling in-ear buds."},
	{"id":2,"name":"Bass Boom Speaker","category":"Speakers","price":49.99,
	 "image":"speaker.png","rating":4.0,"desc":"Waterproof portable speaker."}
]`

func instantConfig() config.Config {
	cfg := config.Default()
	cfg.UI.SettleDelay = "0s"
	cfg.UI.StaggerDelay = "0s"
	return cfg
}

func newTestModel(t *testing.T, catalogJSON string, store storage.Store) Model {
	t.Helper()
	if store == nil {
		store = storage.NewMemStore()
	}
	return New(instantConfig(), catalog.Load([]byte(catalogJSON)), store)
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func settle(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, settledMsg{})
}

func key(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func typeRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func TestStartsInLoadingPhase(t *testing.T) {
	m := newTestModel(t, fixtureJSON, nil)
	assert.Equal(t, PhaseLoading, m.CurrentPhase())
}

func TestSettleResolvesPopulated(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	assert.Equal(t, PhasePopulated, m.CurrentPhase())
	assert.Len(t, m.results, 2)
	// Zero stagger delay reveals the whole batch at once.
	assert.Equal(t, 2, m.revealed)
}

func TestSettleResolvesEmptyForEmptyCatalog(t *testing.T) {
	m := settle(t, newTestModel(t, `[]`, nil))
	assert.Equal(t, PhaseEmpty, m.CurrentPhase())
}

func TestSettleResolvesEmptyForMalformedCatalog(t *testing.T) {
	m := settle(t, newTestModel(t, `{broken`, nil))
	assert.Equal(t, PhaseEmpty, m.CurrentPhase())
}

func TestSearchWithNoMatchesEntersEmptyAndBack(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	m = step(t, m, typeRune('z'))
	assert.Equal(t, PhaseEmpty, m.CurrentPhase())

	m = step(t, m, key(tea.KeyBackspace))
	assert.Equal(t, PhasePopulated, m.CurrentPhase())
	assert.Len(t, m.results, 2)
}

func TestCategoryCycleFilters(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))
	require.Equal(t, []string{"all", "Earbuds", "Speakers"}, m.categories)

	m = step(t, m, key(tea.KeyTab))
	assert.Equal(t, "Earbuds", m.query.Category)
	require.Len(t, m.results, 1)
	assert.Equal(t, 1, m.results[0].ID)
}

func TestSortCyclePriceDescending(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	m = step(t, m, key(tea.KeyShiftTab)) // price asc
	m = step(t, m, key(tea.KeyShiftTab)) // price desc
	require.Equal(t, catalog.SortPriceDesc, m.query.Sort)
	assert.Equal(t, "Bass Boom Speaker", m.results[0].Name)
}

func TestStaggerRevealsPerBatch(t *testing.T) {
	cfg := instantConfig()
	cfg.UI.StaggerDelay = "10ms"
	m := New(cfg, catalog.Load([]byte(fixtureJSON)), storage.NewMemStore())

	m = settle(t, m)
	assert.Equal(t, 1, m.revealed)

	m = step(t, m, staggerMsg{batch: m.batch})
	assert.Equal(t, 2, m.revealed)

	// A tick from a superseded batch is stale and changes nothing.
	m = step(t, m, staggerMsg{batch: m.batch - 1})
	assert.Equal(t, 2, m.revealed)
}

// =============================================================================
// CART AND TOASTS
// =============================================================================

func TestEnterAddsSelectedToCart(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	m = step(t, m, key(tea.KeyEnter))

	assert.Equal(t, 1, m.Cart().Count())
	require.Equal(t, 1, m.toasts.Len())
	tst := m.toasts.Active()[0]
	assert.Equal(t, toast.SeveritySuccess, tst.Severity)
	assert.Equal(t, "Deployed Pro Wireless Earbuds to cart.", tst.Message)
}

func TestCheckoutWithEmptyCartIsRejected(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	m = step(t, m, key(tea.KeyCtrlK))

	assert.Equal(t, overlayNone, m.overlay, "no navigation on empty checkout")
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, toast.SeverityError, m.toasts.Active()[0].Severity)
	assert.Equal(t, 0, m.Cart().Count())
}

func TestCheckoutWithItemsOpensManifest(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))
	m = step(t, m, key(tea.KeyEnter))
	m = step(t, m, key(tea.KeyCtrlK))

	assert.Equal(t, overlayCheckout, m.overlay)
}

func TestCartPanelRemoveShiftsSelection(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))
	m = step(t, m, key(tea.KeyEnter))
	m = step(t, m, key(tea.KeyEnter))
	require.Equal(t, 2, m.Cart().Count())

	m = step(t, m, key(tea.KeyCtrlB))
	require.True(t, m.showCart)

	m = step(t, m, typeRune('x'))
	assert.Equal(t, 1, m.Cart().Count())

	// Removing from an emptied cart is guarded, not fatal.
	m = step(t, m, typeRune('x'))
	m = step(t, m, typeRune('x'))
	assert.Equal(t, 0, m.Cart().Count())
}

func TestToastExpiryAfterDismissIsNoOp(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))
	m = step(t, m, key(tea.KeyCtrlK)) // empty-cart error toast
	id := m.toasts.Active()[0].ID

	m = step(t, m, key(tea.KeyCtrlT)) // user dismisses early
	assert.Equal(t, 0, m.toasts.Len())

	m = step(t, m, toastExpiredMsg{id: id}) // scheduled expiry fires late
	assert.Equal(t, 0, m.toasts.Len())
}

func TestCorruptStoredCartSurfacesWarningAtSettle(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set(cart.StorageKey, []byte(`{broken`)))

	m := settle(t, newTestModel(t, fixtureJSON, store))

	assert.Equal(t, 0, m.Cart().Count())
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, toast.SeverityWarning, m.toasts.Active()[0].Severity)
}

func TestPersistFailureSurfacesWarningButKeepsCart(t *testing.T) {
	store := storage.NewMemStore()
	store.FailWrites = true

	m := settle(t, newTestModel(t, fixtureJSON, store))
	m = step(t, m, key(tea.KeyEnter))

	assert.Equal(t, 1, m.Cart().Count())
	severities := make(map[toast.Severity]int)
	for _, tst := range m.toasts.Active() {
		severities[tst.Severity]++
	}
	assert.Equal(t, 1, severities[toast.SeveritySuccess])
	assert.Equal(t, 1, severities[toast.SeverityWarning])
}

// =============================================================================
// OVERLAYS
// =============================================================================

func TestQuickViewShowsSelectedProduct(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	m = step(t, m, key(tea.KeyDown))
	m = step(t, m, key(tea.KeyCtrlV))

	require.Equal(t, overlayQuickView, m.overlay)
	assert.Equal(t, 2, m.quickView.ID, "overlay is parameterized by the selected product")
}

func TestQuickViewAddRoutesLikeCardAdd(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))
	m = step(t, m, key(tea.KeyCtrlV))
	m = step(t, m, key(tea.KeyEnter))

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, 1, m.Cart().Count())
	assert.Equal(t, 1, m.toasts.Len())
}

func TestAuthRoundTrip(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))

	m = step(t, m, key(tea.KeyCtrlL))
	require.Equal(t, overlayAuth, m.overlay)

	for _, r := range "nova@example.com" {
		m = step(t, m, typeRune(r))
	}
	m = step(t, m, key(tea.KeyEnter))
	assert.True(t, m.authBusy)

	m = step(t, m, authDoneMsg{email: m.emailInput.Value()})
	assert.Equal(t, overlayNone, m.overlay)
	assert.True(t, m.session.LoggedIn())
	assert.Equal(t, "nova", m.session.User())
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, "Welcome back, Commander nova", m.toasts.Active()[0].Message)
}

func TestAuthInvalidEmailToastsError(t *testing.T) {
	m := settle(t, newTestModel(t, fixtureJSON, nil))
	m = step(t, m, key(tea.KeyCtrlL))
	m = step(t, m, authDoneMsg{email: "not-an-email"})

	assert.False(t, m.session.LoggedIn())
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, toast.SeverityError, m.toasts.Active()[0].Severity)
}

func TestLogoutTogglesSessionOff(t *testing.T) {
	store := storage.NewMemStore()
	m := settle(t, newTestModel(t, fixtureJSON, store))
	m = step(t, m, authDoneMsg{email: "nova@example.com"})
	require.True(t, m.session.LoggedIn())

	m = step(t, m, key(tea.KeyCtrlL))
	assert.False(t, m.session.LoggedIn())
}

func TestViewRendersWithoutPanicAcrossPhases(t *testing.T) {
	m := newTestModel(t, fixtureJSON, nil)
	assert.NotEmpty(t, m.View()) // loading

	m = settle(t, m)
	assert.NotEmpty(t, m.View()) // populated

	m = step(t, m, key(tea.KeyCtrlB))
	assert.NotEmpty(t, m.View()) // cart panel

	m = step(t, m, key(tea.KeyEsc))
	m = step(t, m, key(tea.KeyCtrlV))
	assert.NotEmpty(t, m.View()) // quick view
}
