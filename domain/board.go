package domain

import "time"

// Column is an ordered bucket of card ids within one board. A card id may
// appear in at most one column of its board.
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	CardIDs []string `json:"cardIds"`
}

// Board is a named collection of ordered columns. Cards are stored
// out-of-line in a separate per-board record so that editing a card never
// rewrites the board list.
type Board struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Columns   []Column  `json:"columns"`
	CreatedAt time.Time `json:"createdAt"`
	IsDefault bool      `json:"isDefault,omitempty"`
}

// Column returns the column with the given id, or nil.
func (b *Board) Column(id string) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

// ColumnOf returns the column currently holding the card, or nil.
func (b *Board) ColumnOf(cardID string) *Column {
	for i := range b.Columns {
		for _, id := range b.Columns[i].CardIDs {
			if id == cardID {
				return &b.Columns[i]
			}
		}
	}
	return nil
}
