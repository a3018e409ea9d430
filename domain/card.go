package domain

// Priority ranks how urgent a card is.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
)

// Card represents a single task or deal tracked on a board. Cards live in a
// per-board map keyed by id; columns reference them by id only.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Customer    string   `json:"customer,omitempty"`
	Value       float64  `json:"value,omitempty"`
	Probability int      `json:"probability,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	Status      Status   `json:"status,omitempty"`
	Progress    int      `json:"progress,omitempty"`
	StartDate   Date     `json:"startDate,omitempty"`
	DueDate     Date     `json:"dueDate,omitempty"`
	ClosingDate Date     `json:"closingDate,omitempty"`
	CreatedBy   string   `json:"createdBy,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
	ParentID    string   `json:"parentId,omitempty"`
}
