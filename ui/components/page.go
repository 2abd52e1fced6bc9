package components

import (
	"strings"

	"github.com/Rorical/NearCounter/internal/view"
	"github.com/Rorical/NearCounter/ui/styles"
)

const title = "This is just a counter, but this time on blockchain!"

// RenderPage draws the whole terminal page for screen.
func RenderPage(screen view.Screen, loadingDots int, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render(title) + "\n\n")

	if !screen.SignedIn {
		b.WriteString(styles.HintStyle().Render("You'll need to sign in to call contract methods:") + "\n\n")
	} else {
		b.WriteString(RenderScreen(screen) + "\n\n")
	}
	b.WriteString("  " + RenderControls(screen.Controls) + "\n\n")

	if width <= 0 {
		width = 60
	}
	b.WriteString(RenderStatus(screen, loadingDots, width))

	return b.String()
}
