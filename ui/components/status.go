package components

import (
	"strings"

	"github.com/Rorical/NearCounter/internal/view"
	"github.com/Rorical/NearCounter/ui/styles"
)

func RenderStatus(screen view.Screen, loadingDots int, width int) string {
	statusStyle := styles.StatusStyle(width)

	var statusContent string
	switch {
	case !screen.SignedIn:
		statusContent = "Signed out"
	case screen.Loading:
		statusContent = "Waiting for contract" + strings.Repeat(".", loadingDots)
	default:
		statusContent = "Signed in as " + screen.AccountID
	}
	statusContent += " | q: quit"

	return statusStyle.Render(statusContent)
}
