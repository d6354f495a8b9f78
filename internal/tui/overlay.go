package tui

import (
	"strings"
	"unicode/utf8"
)

// spliceAt draws block on top of background with the block's top-left corner
// at cell (x, y), preserving background content on both sides of every block
// line. Both strings are newline-separated frames; the result keeps the
// background's line count (extending it if the block reaches past the end).
func spliceAt(background, block string, x, y int) string {
	if block == "" {
		return background
	}
	bgLines := strings.Split(background, "\n")
	blockLines := strings.Split(block, "\n")

	blockWidth := 0
	for _, line := range blockLines {
		if w := visibleWidth(line); w > blockWidth {
			blockWidth = w
		}
	}

	for i, blockLine := range blockLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		left := truncateAnsi(bgLines[row], x)
		if w := visibleWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		padded := blockLine
		if w := visibleWidth(blockLine); w < blockWidth {
			padded += strings.Repeat(" ", blockWidth-w)
		}
		right := skipAnsi(bgLines[row], x+blockWidth)
		bgLines[row] = left + padded + right
	}

	return strings.Join(bgLines, "\n")
}

// visibleWidth counts the visible cells in a line, skipping ANSI escapes.
// One cell per rune, matching the cursor model used everywhere else.
func visibleWidth(s string) int {
	w := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) {
			i = ansiEscapeEnd(s, i)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		w++
	}
	return w
}

// ansiEscapeEnd returns the byte index just past the ANSI escape sequence
// starting at s[i] (where s[i] == '\x1b'). Handles CSI (\x1b[...X) and
// charset (\x1b(X) sequences.
func ansiEscapeEnd(s string, i int) int {
	j := i + 1
	if j >= len(s) {
		return j
	}
	if s[j] == '[' {
		j++
		for j < len(s) && !((s[j] >= 'A' && s[j] <= 'Z') || (s[j] >= 'a' && s[j] <= 'z')) {
			j++
		}
		if j < len(s) {
			j++
		}
	} else if s[j] == '(' {
		j += 2
		if j > len(s) {
			j = len(s)
		}
	}
	return j
}

// truncateAnsi returns the first maxWidth visible characters of s,
// preserving any ANSI escape sequences encountered along the way.
func truncateAnsi(s string, maxWidth int) string {
	var result strings.Builder
	visCol := 0
	i := 0
	for i < len(s) && visCol < maxWidth {
		if s[i] == '\x1b' && i+1 < len(s) {
			j := ansiEscapeEnd(s, i)
			result.WriteString(s[i:j])
			i = j
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		result.WriteString(s[i : i+size])
		i += size
		visCol++
	}
	return result.String()
}

// skipAnsi skips past the first skip visible characters in s and returns
// the remainder, including any ANSI sequences that appear after the skip point.
func skipAnsi(s string, skip int) string {
	visCol := 0
	i := 0
	for i < len(s) && visCol < skip {
		if s[i] == '\x1b' && i+1 < len(s) {
			i = ansiEscapeEnd(s, i)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		visCol++
	}
	return s[i:]
}
