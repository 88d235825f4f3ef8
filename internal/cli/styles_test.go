package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		name    string
		format  func(string) string
		icon    string
		message string
	}{
		{name: "success", format: FormatSuccess, icon: SuccessIcon, message: "feed loaded"},
		{name: "error", format: FormatError, icon: ErrorIcon, message: "feed rejected"},
		{name: "warning", format: FormatWarning, icon: WarningIcon, message: "showing sample data"},
		{name: "info", format: FormatInfo, icon: InfoIcon, message: "nothing to show"},
		{name: "title", format: FormatTitle, icon: WalletIcon, message: "Expenses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.format(tt.message)
			assert.Contains(t, got, tt.icon)
			assert.Contains(t, got, tt.message)
		})
	}
}

func TestRenderBox(t *testing.T) {
	got := RenderBox("Summary", "4 of 20 expenses")

	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "4 of 20 expenses")
}
