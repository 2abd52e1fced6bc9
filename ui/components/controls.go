package components

import (
	"strings"

	"github.com/Rorical/NearCounter/internal/view"
	"github.com/Rorical/NearCounter/ui/styles"
)

// RenderControls draws one button per control with its first key binding.
func RenderControls(controls []view.Control) string {
	var b strings.Builder

	for _, c := range controls {
		label := c.Label
		if len(c.Keys) > 0 {
			label += " (" + c.Keys[0] + ")"
		}
		if c.Disabled {
			b.WriteString(styles.DisabledButtonStyle().Render(label))
		} else {
			b.WriteString(styles.ButtonStyle().Render(label))
		}
	}

	return b.String()
}
