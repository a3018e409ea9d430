// Package board implements the Kanban domain operations: boards, the
// ordered columns inside them, and the per-board card maps stored
// out-of-line so a card edit never rewrites the board list.
package board

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ErickIraizos/v2trello/activity"
	"github.com/ErickIraizos/v2trello/bus"
	"github.com/ErickIraizos/v2trello/domain"
	"github.com/ErickIraizos/v2trello/storage"
)

// BoardsKey is the storage key holding the ordered board list (no cards).
const BoardsKey = "crm_boards"

// cardsKeyPrefix shards card maps one key per board.
const cardsKeyPrefix = "kanban_cards_"

// CardsKey returns the storage key holding the card map of one board.
func CardsKey(boardID string) string {
	return cardsKeyPrefix + boardID
}

// Store runs every board, column and card mutation. Each logical operation
// writes the fewest keys possible, publishes every key it wrote, and appends
// to the activity journal.
type Store struct {
	kv      *storage.KV
	bus     *bus.Bus
	journal *activity.Log
	logger  *log.Logger
	now     func() time.Time
}

// New creates a board store. journal may be nil; a nil logger falls back to
// the standard logger.
func New(kv *storage.KV, b *bus.Bus, journal *activity.Log, logger *log.Logger) *Store {
	if b == nil {
		panic("board.New: bus is nil")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Store{kv: kv, bus: b, journal: journal, logger: logger, now: time.Now}
}

// Boards returns the stored board list.
func (s *Store) Boards() []domain.Board {
	return storage.Read(s.kv, BoardsKey, []domain.Board{})
}

// Board returns one board by id.
func (s *Store) Board(boardID string) (domain.Board, error) {
	for _, b := range s.Boards() {
		if b.ID == boardID {
			return b, nil
		}
	}
	return domain.Board{}, &domain.NotFoundError{Entity: domain.EntityBoard, ID: boardID}
}

// Cards returns the card map of one board.
func (s *Store) Cards(boardID string) (map[string]domain.Card, error) {
	if _, err := s.Board(boardID); err != nil {
		return nil, err
	}
	return storage.Read(s.kv, CardsKey(boardID), map[string]domain.Card{}), nil
}

// CreateBoard creates a board with the default four-column template and
// appends it to the board list.
func (s *Store) CreateBoard(title string) (domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Board{}, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	b := domain.Board{
		ID:        domain.NewID("board"),
		Title:     title,
		CreatedAt: s.now(),
		Columns:   defaultColumns(),
	}
	boards := append(s.Boards(), b)
	if err := s.kv.Write(BoardsKey, boards); err != nil {
		return domain.Board{}, err
	}
	s.bus.Publish(BoardsKey)
	s.record(domain.ActionCreate, domain.EntityBoard, b.Title, b.ID, nil)
	return b, nil
}

// RenameBoard replaces a board's title in place.
func (s *Store) RenameBoard(boardID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	boards := s.Boards()
	for i := range boards {
		if boards[i].ID == boardID {
			boards[i].Title = title
			if err := s.kv.Write(BoardsKey, boards); err != nil {
				return err
			}
			s.bus.Publish(BoardsKey)
			s.record(domain.ActionEdit, domain.EntityBoard, title, boardID, nil)
			return nil
		}
	}
	return &domain.NotFoundError{Entity: domain.EntityBoard, ID: boardID}
}

// DeleteBoard removes a board from the list together with its out-of-line
// card map. Deleting an unknown board is a no-op.
func (s *Store) DeleteBoard(boardID string) error {
	boards := s.Boards()
	kept := make([]domain.Board, 0, len(boards))
	var deleted *domain.Board
	for _, b := range boards {
		if b.ID == boardID {
			deleted = &b
			continue
		}
		kept = append(kept, b)
	}
	if deleted == nil {
		return nil
	}
	if err := s.kv.Write(BoardsKey, kept); err != nil {
		return err
	}
	s.bus.Publish(BoardsKey)
	if err := s.kv.Remove(CardsKey(boardID)); err != nil {
		// The board itself is gone; the orphaned card key is only garbage.
		s.logger.Warnf("board: drop card map for %s: %v", boardID, err)
	} else {
		s.bus.Publish(CardsKey(boardID))
	}
	s.record(domain.ActionDelete, domain.EntityBoard, deleted.Title, boardID, nil)
	return nil
}

// AddCard validates fields, assigns a fresh id and appends the card to the
// given column. The card map is written before the board list so a column
// never references a card that is not yet stored.
func (s *Store) AddCard(boardID, columnID string, fields domain.Card) (domain.Card, error) {
	boards := s.Boards()
	b := findBoard(boards, boardID)
	if b == nil {
		return domain.Card{}, &domain.NotFoundError{Entity: domain.EntityBoard, ID: boardID}
	}
	col := b.Column(columnID)
	if col == nil {
		return domain.Card{}, &domain.NotFoundError{Entity: domain.EntityColumn, ID: columnID}
	}
	card, err := normalizeCard(fields)
	if err != nil {
		return domain.Card{}, err
	}
	card.ID = domain.NewID("card")

	cardsKey := CardsKey(boardID)
	cards := storage.Read(s.kv, cardsKey, map[string]domain.Card{})
	cards[card.ID] = card
	if err := s.kv.Write(cardsKey, cards); err != nil {
		return domain.Card{}, err
	}
	s.bus.Publish(cardsKey)

	col.CardIDs = append(col.CardIDs, card.ID)
	if err := s.kv.Write(BoardsKey, boards); err != nil {
		return domain.Card{}, err
	}
	s.bus.Publish(BoardsKey)
	s.record(domain.ActionCreate, domain.EntityCard, card.Title, card.ID, map[string]any{"tablero": b.Title})
	return card, nil
}

// EditCard replaces the stored fields of a card. Column membership and id
// are untouched.
func (s *Store) EditCard(boardID, cardID string, fields domain.Card) (domain.Card, error) {
	b := findBoard(s.Boards(), boardID)
	if b == nil {
		return domain.Card{}, &domain.NotFoundError{Entity: domain.EntityBoard, ID: boardID}
	}
	cardsKey := CardsKey(boardID)
	cards := storage.Read(s.kv, cardsKey, map[string]domain.Card{})
	if _, ok := cards[cardID]; !ok {
		return domain.Card{}, &domain.NotFoundError{Entity: domain.EntityCard, ID: cardID}
	}
	card, err := normalizeCard(fields)
	if err != nil {
		return domain.Card{}, err
	}
	card.ID = cardID
	cards[cardID] = card
	if err := s.kv.Write(cardsKey, cards); err != nil {
		return domain.Card{}, err
	}
	s.bus.Publish(cardsKey)
	s.record(domain.ActionEdit, domain.EntityCard, card.Title, cardID, map[string]any{"tablero": b.Title})
	return card, nil
}

// MoveCard moves a card between two columns of one board. Moving a card onto
// its own column is a no-op. The id is filtered out of every column before
// being appended to exactly one, so duplication is impossible by
// construction. The whole move is one board-list write.
func (s *Store) MoveCard(boardID, cardID, fromColumnID, toColumnID string) error {
	if fromColumnID == toColumnID {
		return nil
	}
	boards := s.Boards()
	b := findBoard(boards, boardID)
	if b == nil {
		return &domain.NotFoundError{Entity: domain.EntityBoard, ID: boardID}
	}
	to := b.Column(toColumnID)
	if to == nil {
		return &domain.NotFoundError{Entity: domain.EntityColumn, ID: toColumnID}
	}
	cards := storage.Read(s.kv, CardsKey(boardID), map[string]domain.Card{})
	card, ok := cards[cardID]
	if !ok {
		return &domain.NotFoundError{Entity: domain.EntityCard, ID: cardID}
	}
	for i := range b.Columns {
		b.Columns[i].CardIDs = remove(b.Columns[i].CardIDs, cardID)
	}
	to.CardIDs = append(to.CardIDs, cardID)
	if err := s.kv.Write(BoardsKey, boards); err != nil {
		return err
	}
	s.bus.Publish(BoardsKey)
	s.record(domain.ActionMove, domain.EntityCard, card.Title, cardID, map[string]any{
		"tablero": b.Title,
		"columna": to.Title,
	})
	return nil
}

// DeleteCard removes a card from the board's card map and from every
// column. Deleting a card that is already absent is a no-op.
func (s *Store) DeleteCard(boardID, cardID string) error {
	boards := s.Boards()
	b := findBoard(boards, boardID)
	if b == nil {
		return nil
	}
	cardsKey := CardsKey(boardID)
	cards := storage.Read(s.kv, cardsKey, map[string]domain.Card{})
	card, existed := cards[cardID]
	if existed {
		delete(cards, cardID)
		if err := s.kv.Write(cardsKey, cards); err != nil {
			return err
		}
		s.bus.Publish(cardsKey)
	}

	changed := false
	for i := range b.Columns {
		trimmed := remove(b.Columns[i].CardIDs, cardID)
		if len(trimmed) != len(b.Columns[i].CardIDs) {
			b.Columns[i].CardIDs = trimmed
			changed = true
		}
	}
	if changed {
		if err := s.kv.Write(BoardsKey, boards); err != nil {
			return err
		}
		s.bus.Publish(BoardsKey)
	}
	if existed {
		s.record(domain.ActionDelete, domain.EntityCard, card.Title, cardID, map[string]any{"tablero": b.Title})
	}
	return nil
}

// CardStatus resolves the effective status of a card: the explicit field
// wins, the title of the containing column is the fallback, and a past due
// date reads as overdue for anything not completed.
func (s *Store) CardStatus(boardID, cardID string) (domain.Status, error) {
	b := findBoard(s.Boards(), boardID)
	if b == nil {
		return "", &domain.NotFoundError{Entity: domain.EntityBoard, ID: boardID}
	}
	cards := storage.Read(s.kv, CardsKey(boardID), map[string]domain.Card{})
	card, ok := cards[cardID]
	if !ok {
		return "", &domain.NotFoundError{Entity: domain.EntityCard, ID: cardID}
	}
	var columnTitle string
	if col := b.ColumnOf(cardID); col != nil {
		columnTitle = col.Title
	}
	return domain.ResolveStatus(card, columnTitle, domain.DateOf(s.now())), nil
}

func (s *Store) record(action domain.Action, entity domain.Entity, name, id string, details map[string]any) {
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Append(action, entity, name, id, details); err != nil {
		s.logger.Warnf("board: journal %s %s: %v", action, id, err)
	}
}

func findBoard(boards []domain.Board, id string) *domain.Board {
	for i := range boards {
		if boards[i].ID == id {
			return &boards[i]
		}
	}
	return nil
}

func remove(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

// normalizeCard validates fields and applies the write-boundary rules:
// dates collapse to the canonical day form, bounded numbers are checked,
// and a completed card always reads progress 100.
func normalizeCard(c domain.Card) (domain.Card, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return domain.Card{}, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if c.Probability < 0 || c.Probability > 100 {
		return domain.Card{}, &domain.ValidationError{Field: "probability", Reason: "must be between 0 and 100"}
	}
	if c.Progress < 0 || c.Progress > 100 {
		return domain.Card{}, &domain.ValidationError{Field: "progress", Reason: "must be between 0 and 100"}
	}
	var err error
	if c.StartDate, err = c.StartDate.Normalize(); err != nil {
		return domain.Card{}, &domain.ValidationError{Field: "startDate", Reason: err.Error()}
	}
	if c.DueDate, err = c.DueDate.Normalize(); err != nil {
		return domain.Card{}, &domain.ValidationError{Field: "dueDate", Reason: err.Error()}
	}
	if c.ClosingDate, err = c.ClosingDate.Normalize(); err != nil {
		return domain.Card{}, &domain.ValidationError{Field: "closingDate", Reason: err.Error()}
	}
	if c.Status == domain.StatusCompleted {
		c.Progress = 100
	}
	return c, nil
}

// defaultColumns is the four-column template every new board starts with.
func defaultColumns() []domain.Column {
	return []domain.Column{
		{ID: domain.NewID("col"), Title: "Planeación", CardIDs: []string{}},
		{ID: domain.NewID("col"), Title: "En Progreso", CardIDs: []string{}},
		{ID: domain.NewID("col"), Title: "Revisión", CardIDs: []string{}},
		{ID: domain.NewID("col"), Title: "Completado", CardIDs: []string{}},
	}
}
