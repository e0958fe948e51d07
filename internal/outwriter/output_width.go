package outwriter

import (
	"os"
	"strings"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80 // used when stdout is not a terminal (CI, pipes)
	minTextWidth     = 40
	maxTextWidth     = 120
)

// getTermWidth returns the configured width, the detected terminal width or a default.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return defaultTermWidth
	}
	return detected
}

// getTextWidth returns the column at which narrative text is wrapped.
func getTextWidth(cfg *contract.Config) int {
	return min(max(getTermWidth(cfg), minTextWidth), maxTextWidth)
}

// getMaxItemTextWidth returns how much room the item column of the catalog table gets.
func getMaxItemTextWidth(cfg *contract.Config) int {
	// Category + number columns with borders and padding
	available := getTermWidth(cfg) - 45
	return min(max(available, 20), 90)
}

// wrapText wraps every line of text at width runes, keeping existing line breaks.
// Words longer than width are left on their own line.
func wrapText(text string, width int) string {
	lines := strings.Split(text, "\n")
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		wrapLine(&sb, line, width)
	}
	return sb.String()
}

func wrapLine(sb *strings.Builder, line string, width int) {
	words := strings.Fields(line)
	lineLen := 0
	for i, word := range words {
		wordLen := len([]rune(word))
		if i > 0 {
			if lineLen+1+wordLen > width {
				sb.WriteByte('\n')
				lineLen = 0
			} else {
				sb.WriteByte(' ')
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += wordLen
	}
}
