package tui

import "github.com/KavinduLakshith/payable-assessment/internal/loader"

// Data loading messages.
type loadResultMsg struct {
	status loader.Status
}
