// internal/display/display.go
//
// Terminal rendering of rounds and the letter keyboard.
//   - Plain mode prints the guess and its g/y/- pattern, safe for pipes and logs.
//   - Tile mode colors each letter with lipgloss (green, amber, slate).
//
// Keyboard tracks the best mark seen per letter across a game.

package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/absurdle/internal/absurdle"
)

// Tile palette.
var (
	colorGreen  = lipgloss.Color("#538D4E")
	colorYellow = lipgloss.Color("#C9B458")
	colorGrey   = lipgloss.Color("#3A3A3C")
	colorKey    = lipgloss.Color("#818384")
	colorText   = lipgloss.Color("#FFFFFF")
)

var tileStyles = map[absurdle.Mark]lipgloss.Style{
	absurdle.Green:  tile(colorGreen),
	absurdle.Yellow: tile(colorYellow),
	absurdle.Grey:   tile(colorGrey),
}

var (
	keyStyle     = tile(colorKey)
	messageStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorKey)
)

func tile(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(bg).Padding(0, 1)
}

// keyboardRows is the QWERTY layout used by Keyboard rendering.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Renderer turns rounds into terminal text.
type Renderer struct {
	plain bool
}

// New returns a Renderer. plain selects the uncolored g/y/- format.
func New(plain bool) *Renderer {
	return &Renderer{plain: plain}
}

// Row renders one guess with its feedback. An empty pattern (empty guess)
// renders as an empty string.
func (r *Renderer) Row(guess string, p absurdle.Pattern) string {
	if p == "" {
		return ""
	}
	guess = strings.ToUpper(guess)
	if r.plain {
		return guess + " " + p.String()
	}
	marks := p.Marks()
	tiles := make([]string, len(marks))
	for i, m := range marks {
		tiles[i] = tileStyles[m].Render(string(guess[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Keyboard renders k as three QWERTY rows.
//
// Plain keys: " q " unknown, "[q]" green, "(q)" yellow, " - " grey.
func (r *Renderer) Keyboard(k *Keyboard) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", i))
		for j := 0; j < len(row); j++ {
			b.WriteString(r.key(row[j], k))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) key(c byte, k *Keyboard) string {
	m, seen := k.Mark(c)
	if r.plain {
		switch {
		case !seen:
			return " " + string(c) + " "
		case m == absurdle.Green:
			return "[" + string(c) + "]"
		case m == absurdle.Yellow:
			return "(" + string(c) + ")"
		default:
			return " - "
		}
	}
	label := strings.ToUpper(string(c))
	if !seen {
		return keyStyle.Render(label)
	}
	return tileStyles[m].Render(label)
}

// Message renders a status line (win, loss, prompts).
func (r *Renderer) Message(s string) string {
	if r.plain {
		return s
	}
	return messageStyle.Render(s)
}

// Muted renders secondary text such as remaining counts.
func (r *Renderer) Muted(s string) string {
	if r.plain {
		return s
	}
	return mutedStyle.Render(s)
}

// -----------------------------------------------------------------------------
// Keyboard

// Keyboard records the strongest mark seen for each letter:
// green beats yellow beats grey.
type Keyboard struct {
	marks map[byte]absurdle.Mark
}

// NewKeyboard returns an empty keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{marks: make(map[byte]absurdle.Mark)}
}

// Record folds one round into the keyboard.
func (k *Keyboard) Record(guess string, p absurdle.Pattern) {
	marks := p.Marks()
	guess = strings.ToLower(guess)
	for i := 0; i < len(marks) && i < len(guess); i++ {
		c := guess[i]
		if prev, ok := k.marks[c]; ok && rank(prev) >= rank(marks[i]) {
			continue
		}
		k.marks[c] = marks[i]
	}
}

// Mark returns the recorded mark for letter c.
func (k *Keyboard) Mark(c byte) (absurdle.Mark, bool) {
	m, ok := k.marks[c]
	return m, ok
}

// Reset forgets every letter.
func (k *Keyboard) Reset() {
	clear(k.marks)
}

func rank(m absurdle.Mark) int {
	switch m {
	case absurdle.Green:
		return 2
	case absurdle.Yellow:
		return 1
	default:
		return 0
	}
}
