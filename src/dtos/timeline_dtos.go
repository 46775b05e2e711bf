package dtos

import "time"

// Record kinds on the timeline
const (
	RecordKindLoan        = "loan"
	RecordKindReservation = "reservation"
)

// Visual emphasis categories consumed verbatim by the presentation layer
const (
	EmphasisCancelled = "cancelled"
	EmphasisReturned  = "returned"
	EmphasisOverdue   = "overdue"
	EmphasisActive    = "active"
	EmphasisReserved  = "reserved"
)

// TimelineRecordDTO is one annotated entry of the merged loan + reservation
// history. Loan-only fields stay nil on reservation records.
type TimelineRecordDTO struct {
	Kind           string     `json:"kind"`
	Id             string     `json:"id"`
	BookId         int        `json:"book_id"`
	BookTitle      string     `json:"book_title"`
	UserId         int        `json:"user_id"`
	UserEmail      string     `json:"user_email"`
	Expedit        *time.Time `json:"expedit"`
	DueDate        *time.Time `json:"due_date"`
	ReturnedAt     *time.Time `json:"returned_at"`
	DeletedAt      *time.Time `json:"deleted_at"`
	RemainingDays  *int       `json:"remaining_days"`
	RemainingHours *int       `json:"remaining_hours"`
	IsOverdue      *bool      `json:"is_overdue"`
	Emphasis       string     `json:"emphasis"`
}
