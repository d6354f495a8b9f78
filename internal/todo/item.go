package todo

import "github.com/google/uuid"

// defaultPriority is assigned to every new item. Nothing reads it back yet;
// it is kept so items sort/filter work can build on it later without a schema
// change.
const defaultPriority = 1

// Item is a single entry in the todo list. Items are immutable once created.
type Item struct {
	ID       string
	Text     string
	Priority int
}

// NewItem creates an item with a fresh ID and the default priority.
func NewItem(text string) Item {
	return Item{
		ID:       uuid.New().String(),
		Text:     text,
		Priority: defaultPriority,
	}
}
