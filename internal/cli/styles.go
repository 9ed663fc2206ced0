// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#2F95DC")
	// SuccessColor indicates healthy or stable readings.
	SuccessColor = lipgloss.Color("#27AE60")
	// WarningColor indicates readings that deserve attention.
	WarningColor = lipgloss.Color("#F39C12")
	// DangerColor indicates critical readings and errors.
	DangerColor = lipgloss.Color("#C0392B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats healthy readings.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning readings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// DangerStyle formats critical readings.
	DangerStyle = lipgloss.NewStyle().
			Foreground(DangerColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered report boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	VitaIcon    = "🌿"
	ChartIcon   = "📊"
	VaultIcon   = "🗄️"
	LockIcon    = "🔒"
	ProIcon     = "⭐"
)

// FormatTitle formats a title with the vita icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(VitaIcon + " " + title)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return DangerStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// StatusStyle picks the style for a status word (Stable/Warning/Critical,
// Balanced/Heavy/Overload Risk, and friends).
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Critical", "Overload Risk", "Unstable", "High":
		return DangerStyle
	case "Warning", "Heavy", "Fair", "Medium", "Needs Attention":
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// RenderLoadBar renders a 0-100 reading where higher means worse,
// such as life load or spending instability.
func RenderLoadBar(score int, width int) string {
	style := SuccessStyle
	switch {
	case score > 70:
		style = DangerStyle
	case score > 40:
		style = WarningStyle
	}
	return renderBar(score, width, style)
}

// RenderHealthBar renders a 0-100 reading where higher means better,
// such as stability or preparedness.
func RenderHealthBar(score int, width int) string {
	style := SuccessStyle
	switch {
	case score < 40:
		style = DangerStyle
	case score < 70:
		style = WarningStyle
	}
	return renderBar(score, width, style)
}

func renderBar(score, width int, style lipgloss.Style) string {
	if width <= 0 {
		width = 20
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return style.Render(bar)
}

// RenderList renders lines as a bulleted list.
func RenderList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + item)
	}
	return b.String()
}
