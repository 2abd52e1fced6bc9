package styles

import "github.com/charmbracelet/lipgloss"

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 2)
}

func ScreenStyle(lightOn bool) lipgloss.Style {
	border := lipgloss.Color("62")
	if lightOn {
		border = lipgloss.Color("214")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Width(24).
		Align(lipgloss.Center)
}

func NumberStyle(positive bool) lipgloss.Style {
	color := lipgloss.Color("203")
	if positive {
		color = lipgloss.Color("78")
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true)
}

func LoaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true)
}

func ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("25")).
		Padding(0, 1).
		MarginRight(1)
}

func DisabledButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		MarginRight(1)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Padding(0, 2)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
