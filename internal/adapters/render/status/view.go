package status

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Shafts taller than this are summarized with a bar instead of one cell per level.
const maxStripLevels = 32

type RenderOptions struct {
	Now time.Time
	// WaitWarnAfter is the age at which the oldest open call is drawn at full intensity.
	WaitWarnAfter time.Duration
}

func renderView(f frame, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Elevator Demand Ledger"),
		s.header.Render(fmt.Sprintf("elevators: %d, open calls: %d", len(f.elevators), f.openCalls)),
	}

	if len(f.elevators) == 0 {
		lines = append(lines, s.empty.Render("No elevators registered."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if f.longest != nil && len(f.elevators) > 1 {
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"longest wait: elevator %d, level %d", f.longest.elevator.ID, f.longest.oldest.Level,
		)))
	}

	for _, ef := range f.elevators {
		lines = append(lines, s.section.Render(renderElevator(ef, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderElevator(ef elevatorFrame, opts RenderOptions, s styles) string {
	parts := []string{
		s.elevator.Render(elevatorTitle(ef.elevator)),
		levelLine(ef.elevator, ef.open, s),
		s.detail.Render("open: " + formatLevels(ef.open)),
	}

	if ef.oldest != nil {
		parts = append(parts, waitLine(ef, opts))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func elevatorTitle(elevator domain.Elevator) string {
	return fmt.Sprintf("Elevator %d (levels %d..%d)", elevator.ID, elevator.MinLevel, elevator.MaxLevel)
}

func levelCount(elevator domain.Elevator) int {
	return elevator.MaxLevel - elevator.MinLevel + 1
}

func levelLine(elevator domain.Elevator, open []int, s styles) string {
	if levelCount(elevator) > maxStripLevels {
		return renderProgressBar(len(open), levelCount(elevator), 24, s) +
			" " + s.detail.Render(fmt.Sprintf("%d/%d levels waiting", len(open), levelCount(elevator)))
	}

	return renderStrip(elevator, open, s)
}

func renderStrip(elevator domain.Elevator, open []int, s styles) string {
	cells := make([]string, 0, levelCount(elevator))
	for level := elevator.MinLevel; level <= elevator.MaxLevel; level++ {
		label := strconv.Itoa(level)
		if slices.Contains(open, level) {
			cells = append(cells, s.levelOpen.Render("["+label+"]"))
			continue
		}
		cells = append(cells, s.levelIdle.Render(" "+label+" "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func formatLevels(levels []int) string {
	if len(levels) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		parts = append(parts, strconv.Itoa(level))
	}

	return strings.Join(parts, ", ")
}

func waitLine(ef elevatorFrame, opts RenderOptions) string {
	style := lipgloss.NewStyle().Foreground(waitColor(ef.wait, opts.WaitWarnAfter))

	return style.Render(fmt.Sprintf("oldest call: level %d, waiting %s", ef.oldest.Level, formatWait(ef.wait)))
}

func formatWait(wait time.Duration) string {
	if wait < time.Minute {
		return "less than a minute"
	}

	if wait < time.Hour {
		minutes := int(wait / time.Minute)
		return plural(minutes, "minute")
	}

	if wait < 24*time.Hour {
		hours := int(math.Floor(wait.Hours()))
		return plural(hours, "hour")
	}

	days := int(math.Floor(wait.Hours() / 24))
	return plural(days, "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func renderProgressBar(filled, total, width int, s styles) string {
	if width <= 0 || total <= 0 {
		return ""
	}

	cells := int(math.Round(float64(width) * float64(filled) / float64(total)))
	cells = min(max(cells, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", cells)),
		s.barEmpty.Render(strings.Repeat("-", width-cells)),
		s.barBracket.Render("]"),
	)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from 240 (faded) to 255 (bright white).
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(strconv.Itoa(colorCode))
}

func waitColor(wait, warnAfter time.Duration) lipgloss.Color {
	if warnAfter <= 0 {
		warnAfter = 15 * time.Minute
	}

	return interpolateColor(wait.Seconds(), 0, warnAfter.Seconds())
}
