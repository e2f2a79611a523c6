package shop

// settledMsg ends the Loading phase after the artificial settle delay.
type settledMsg struct{}

// staggerMsg reveals the next card of the current render batch. A message
// carrying an old batch number is stale and ignored.
type staggerMsg struct {
	batch int
}

// toastExpiredMsg auto-dismisses a toast by ID. Firing against a toast the
// user already dismissed is a no-op.
type toastExpiredMsg struct {
	id string
}

// authDoneMsg completes the simulated authentication round trip.
type authDoneMsg struct {
	email string
}
