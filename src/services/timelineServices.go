package services

import (
	"math"
	"sort"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type TimelineService struct {
	db *gorm.DB
}

// NewTimelineService creates a new instance of TimelineService
func NewTimelineService(db *gorm.DB) *TimelineService {
	return &TimelineService{db: db}
}

// UserTimeline merges the loan and reservation history of a user into one
// chronologically ordered, annotated sequence. Read-only: it only sees
// committed state and takes no locks.
func (s *TimelineService) UserTimeline(userID int, start, end *time.Time) ([]dtos.TimelineRecordDTO, error) {
	return s.timeline("user_id = ?", userID, start, end)
}

// BookTimeline is the same view scoped to a single book
func (s *TimelineService) BookTimeline(bookID int, start, end *time.Time) ([]dtos.TimelineRecordDTO, error) {
	return s.timeline("book_id = ?", bookID, start, end)
}

func (s *TimelineService) timeline(scope string, scopeID int, start, end *time.Time) ([]dtos.TimelineRecordDTO, error) {
	var loans []models.LoanModel
	if err := s.db.Where(scope, scopeID).
		Preload("User").
		Preload("Book").
		Find(&loans).Error; err != nil {
		return nil, err
	}

	// Unscoped: cancelled reservations stay part of the history
	var reservations []models.ReservationModel
	if err := s.db.Unscoped().Where(scope, scopeID).
		Preload("User").
		Preload("Book").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return buildTimeline(loans, reservations, start, end, time.Now()), nil
}

// buildTimeline is the pure merge: tag, filter, sort, annotate. Re-running it
// over the same inputs always yields the same sequence.
func buildTimeline(loans []models.LoanModel, reservations []models.ReservationModel, start, end *time.Time, now time.Time) []dtos.TimelineRecordDTO {
	records := make([]dtos.TimelineRecordDTO, 0, len(loans)+len(reservations))

	for i := range loans {
		records = append(records, loanRecord(&loans[i], now))
	}
	for i := range reservations {
		records = append(records, reservationRecord(&reservations[i]))
	}

	if start != nil || end != nil {
		filtered := records[:0]
		for _, record := range records {
			// a record with no request timestamp cannot match a range
			if record.Expedit == nil {
				continue
			}
			if start != nil && record.Expedit.Before(*start) {
				continue
			}
			if end != nil && record.Expedit.After(*end) {
				continue
			}
			filtered = append(filtered, record)
		}
		records = filtered
	}

	// most recent first; records with no timestamp sort as epoch, last
	sort.SliceStable(records, func(i, j int) bool {
		return expeditOrEpoch(records[i].Expedit).After(expeditOrEpoch(records[j].Expedit))
	})

	return records
}

func expeditOrEpoch(expedit *time.Time) time.Time {
	if expedit == nil {
		return time.Unix(0, 0)
	}
	return *expedit
}

func loanRecord(loan *models.LoanModel, now time.Time) dtos.TimelineRecordDTO {
	expedit := loan.CreatedAt
	dueDate := loan.DueDate
	remainingDays := dtos.RemainingDays(dueDate, now)
	remainingHours := int(math.Floor(dueDate.Sub(now).Hours()))
	isOverdue := dtos.IsOverdue(loan, now)

	record := dtos.TimelineRecordDTO{
		Kind:           dtos.RecordKindLoan,
		Id:             loan.Id,
		BookId:         loan.BookId,
		UserId:         loan.UserId,
		DueDate:        &dueDate,
		ReturnedAt:     loan.ReturnedAt,
		RemainingDays:  &remainingDays,
		RemainingHours: &remainingHours,
		IsOverdue:      &isOverdue,
	}
	if !expedit.IsZero() {
		record.Expedit = &expedit
	}
	if loan.Book != nil {
		record.BookTitle = loan.Book.Title
	}
	if loan.User != nil {
		record.UserEmail = loan.User.Email
	}

	switch {
	case loan.ReturnedAt != nil:
		record.Emphasis = dtos.EmphasisReturned
	case isOverdue:
		record.Emphasis = dtos.EmphasisOverdue
	default:
		record.Emphasis = dtos.EmphasisActive
	}

	return record
}

func reservationRecord(reservation *models.ReservationModel) dtos.TimelineRecordDTO {
	record := dtos.TimelineRecordDTO{
		Kind:     dtos.RecordKindReservation,
		Id:       reservation.Id,
		BookId:   reservation.BookId,
		UserId:   reservation.UserId,
		Expedit:  reservation.Expedit,
		Emphasis: dtos.EmphasisReserved,
	}
	if reservation.Book != nil {
		record.BookTitle = reservation.Book.Title
	}
	if reservation.User != nil {
		record.UserEmail = reservation.User.Email
	}
	if reservation.DeletedAt.Valid {
		deletedAt := reservation.DeletedAt.Time
		record.DeletedAt = &deletedAt
		record.Emphasis = dtos.EmphasisCancelled
	}

	return record
}
