package cli

import (
	"strings"
)

// table renders rows as padded text columns.
type table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // wrap limit per column (0 = no limit)
	right     map[int]bool
}

func newTable(headers ...string) *table {
	return &table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
		right:     make(map[int]bool),
	}
}

// setMaxWidth wraps cells of column col at word boundaries.
func (t *table) setMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// alignRight right-aligns column col, for numbers.
func (t *table) alignRight(col int) {
	t.right[col] = true
}

// addRow adds a row, padding or truncating it to the header count.
func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *table) render() string {
	if len(t.headers) == 0 {
		return ""
	}

	wrapped := make([][][]string, len(t.rows))
	for i, row := range t.rows {
		wrapped[i] = make([][]string, len(row))
		for col, cell := range row {
			wrapped[i][col] = wrapText(cell, t.maxWidths[col])
		}
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for col, lines := range row {
			for _, line := range lines {
				widths[col] = max(widths[col], len(line))
			}
		}
	}

	var b strings.Builder
	sep := strings.Repeat(" ", t.padding)
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for col, cell := range cells {
			parts[col] = t.pad(col, cell, widths[col])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteString("\n")
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	// Lines are trimmed, so the last rule stops where its header does.
	last := len(widths) - 1
	rule[last] = strings.Repeat("-", len(strings.TrimRight(t.pad(last, t.headers[last], widths[last]), " ")))
	writeLine(rule)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for line := range height {
			cells := make([]string, len(row))
			for col, lines := range row {
				if line < len(lines) {
					cells[col] = lines[line]
				}
			}
			writeLine(cells)
		}
	}

	return b.String()
}

func (t *table) pad(col int, s string, width int) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if t.right[col] {
		return fill + s
	}
	return s + fill
}

// wrapText wraps text to width, breaking at spaces and splitting words that
// do not fit on a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if width <= 0 || len(text) <= width || len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
