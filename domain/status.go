package domain

import "strings"

// Status is the lifecycle state of a card. Overdue is derived, never stored.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// Column-title vocabulary for status inference. Matching is case-insensitive
// substring, in both the product's Spanish and English.
var (
	progressWords  = []string{"progreso", "progress"}
	reviewWords    = []string{"revisión", "revision", "review"}
	completedWords = []string{"completado", "ganado", "cerrado", "completed", "won", "closed"}
)

// StatusFromColumn infers a card status from the title of the column that
// holds it. Unrecognized titles mean pending.
func StatusFromColumn(title string) Status {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, completedWords):
		return StatusCompleted
	case containsAny(t, progressWords):
		return StatusInProgress
	case containsAny(t, reviewWords):
		return StatusReview
	default:
		return StatusPending
	}
}

// ResolveStatus returns the effective status of a card. The explicit Status
// field wins; the column-title heuristic is only the fallback for cards that
// never set one. A past due date turns any non-completed status into overdue.
func ResolveStatus(c Card, columnTitle string, today Date) Status {
	st := c.Status
	if st == "" || st == StatusOverdue {
		st = StatusFromColumn(columnTitle)
	}
	if st != StatusCompleted && c.DueDate.Before(today) {
		return StatusOverdue
	}
	return st
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
