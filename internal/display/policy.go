package display

import (
	"fmt"
	"time"

	"hwpanel/internal/models"
)

// TempColor grades a temperature reading: 80°C and up is red, then orange,
// yellow, green.
func TempColor(v int) Color {
	switch {
	case v >= 80:
		return ColorRed
	case v >= 70:
		return ColorOrange
	case v >= 60:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// UsageColor grades a usage percentage: 90% and up is red, then orange,
// yellow, green.
func UsageColor(v int) Color {
	switch {
	case v >= 90:
		return ColorRed
	case v >= 70:
		return ColorOrange
	case v >= 50:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// FPSLabel categorizes a frame rate.
func FPSLabel(fps int) string {
	switch {
	case fps < 30:
		return "LOW"
	case fps < 60:
		return "OK"
	case fps < 120:
		return "GOOD"
	default:
		return "HIGH"
	}
}

// FPSColor colors the frame-rate value to match its category.
func FPSColor(fps int) Color {
	switch {
	case fps < 30:
		return ColorRed
	case fps < 60:
		return ColorYellow
	case fps < 120:
		return ColorGreen
	default:
		return ColorCyan
	}
}

// TempBarFill maps a temperature onto the 0-100 bar-fill scale. Temperatures
// are displayed against a 30-90°C window so a 60°C reading fills the bar the
// same as a 60% usage reading would.
func TempBarFill(v int) int {
	v = models.Clamp(v, 30, 90)
	return (v - 30) * 100 / 60
}

// FormatUptime renders elapsed process time as "<h>h <m>m <s>s".
func FormatUptime(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}
