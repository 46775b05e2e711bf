package dtos

import (
	"math"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
)

// LoanResourceDTO is a loan with its derived circulation facts attached.
// remaining days and overdue are always recomputed from due_date and the
// current time, never stored.
type LoanResourceDTO struct {
	Id             string     `json:"id"`
	UserId         int        `json:"user_id"`
	UserEmail      string     `json:"user_email"`
	BookId         int        `json:"book_id"`
	BookTitle      string     `json:"book_title"`
	DueDate        time.Time  `json:"due_date"`
	IsActive       bool       `json:"is_active"`
	ReturnedAt     *time.Time `json:"returned_at"`
	CreatedAt      time.Time  `json:"created_at"`
	RemainingDays  int        `json:"remaining_days"`
	RemainingHours int        `json:"remaining_hours"`
	IsOverdue      bool       `json:"is_overdue"`
}

// NewLoanResource derives the display facts for a loan at the given instant
func NewLoanResource(loan *models.LoanModel, now time.Time) LoanResourceDTO {
	resource := LoanResourceDTO{
		Id:             loan.Id,
		UserId:         loan.UserId,
		BookId:         loan.BookId,
		DueDate:        loan.DueDate,
		IsActive:       loan.IsActive,
		ReturnedAt:     loan.ReturnedAt,
		CreatedAt:      loan.CreatedAt,
		RemainingDays:  RemainingDays(loan.DueDate, now),
		RemainingHours: int(math.Floor(loan.DueDate.Sub(now).Hours())),
		IsOverdue:      IsOverdue(loan, now),
	}

	if loan.User != nil {
		resource.UserEmail = loan.User.Email
	}
	if loan.Book != nil {
		resource.BookTitle = loan.Book.Title
	}

	return resource
}

// RemainingDays is due_date minus now in whole days, negative once past due
func RemainingDays(dueDate, now time.Time) int {
	return int(math.Floor(dueDate.Sub(now).Hours() / 24))
}

// IsOverdue holds only for active loans whose due date has passed. A returned
// loan is never overdue, whatever its due date.
func IsOverdue(loan *models.LoanModel, now time.Time) bool {
	return loan.IsActive && now.After(loan.DueDate)
}
