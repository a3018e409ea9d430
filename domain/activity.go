package domain

import "time"

// Action names a kind of domain mutation.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionMove   Action = "move"
	ActionDelete Action = "delete"
)

// Entity names what a mutation applied to.
type Entity string

const (
	EntityBoard  Entity = "board"
	EntityColumn Entity = "column"
	EntityCard   Entity = "card"
	EntityUser   Entity = "user"
)

// ActivityEntry records one domain mutation. Entries are immutable once
// appended; the journal only supports whole-log clearing.
type ActivityEntry struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Action     Action         `json:"action"`
	Entity     Entity         `json:"entity"`
	EntityID   string         `json:"entityId,omitempty"`
	EntityName string         `json:"entityName"`
	Details    map[string]any `json:"details,omitempty"`
}
