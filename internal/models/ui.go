package models

// UIState holds terminal-only concerns that never affect the counter state.
type UIState struct {
	Width       int // Terminal width
	Height      int // Terminal height
	LoadingDots int // Animation counter for loading dots
}
