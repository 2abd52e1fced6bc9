package components

import (
	"strings"

	"github.com/Rorical/NearCounter/internal/view"
	"github.com/Rorical/NearCounter/ui/styles"
)

// RenderScreen draws the gameboy screen: light, face and counter display.
func RenderScreen(screen view.Screen) string {
	var b strings.Builder

	if screen.LightOn {
		b.WriteString("●\n")
	} else {
		b.WriteString("○\n")
	}

	b.WriteString(eye(screen.LeftEyeOpen) + "   " + eye(screen.RightEyeOpen) + "\n")

	if screen.PositiveCount {
		b.WriteString("\\___/")
	} else {
		b.WriteString("/‾‾‾\\")
	}
	b.WriteString("\n")
	if screen.ShowTongue {
		b.WriteString("U")
	}
	b.WriteString("\n")

	if screen.HasCount {
		b.WriteString(styles.NumberStyle(screen.PositiveCount).Render(screen.Display))
	} else {
		b.WriteString(styles.LoaderStyle().Render(screen.Display))
	}

	return styles.ScreenStyle(screen.LightOn).Render(b.String())
}

func eye(open bool) string {
	if open {
		return "◉"
	}
	return "—"
}
