package tui

import (
	"unicode/utf8"

	"tuido/internal/todo"
)

// Editor holds the in-progress text for a new item while the popup is open.
// displayWidth caches the rune count of the buffer and is recomputed on every
// mutation; with single-column glyphs it doubles as the cursor offset.
type Editor struct {
	buffer       string
	displayWidth int
}

// InsertRune appends a character to the buffer.
func (e *Editor) InsertRune(r rune) {
	e.buffer += string(r)
	e.recomputeWidth()
}

// Backspace removes the last character. No-op on an empty buffer.
func (e *Editor) Backspace() {
	if e.buffer == "" {
		return
	}
	runes := []rune(e.buffer)
	e.buffer = string(runes[:len(runes)-1])
	e.recomputeWidth()
}

// Commit turns the buffer into a new item and resets the editor.
func (e *Editor) Commit() todo.Item {
	item := todo.NewItem(e.buffer)
	e.reset()
	return item
}

// Discard drops the buffer without producing an item.
func (e *Editor) Discard() {
	e.reset()
}

// Value returns the current buffer contents.
func (e *Editor) Value() string {
	return e.buffer
}

// Width returns the cached display width of the buffer.
func (e *Editor) Width() int {
	return e.displayWidth
}

func (e *Editor) reset() {
	e.buffer = ""
	e.displayWidth = 0
}

func (e *Editor) recomputeWidth() {
	e.displayWidth = utf8.RuneCountInString(e.buffer)
}
