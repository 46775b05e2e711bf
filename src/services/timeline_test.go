package services

import (
	"testing"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func loanAt(id string, createdAt time.Time) models.LoanModel {
	return models.LoanModel{
		Id:        id,
		BookId:    1,
		UserId:    1,
		DueDate:   createdAt.Add(14 * 24 * time.Hour),
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func reservationAt(id string, expedit *time.Time) models.ReservationModel {
	return models.ReservationModel{
		Id:      id,
		BookId:  1,
		UserId:  1,
		Expedit: expedit,
	}
}

func TestTimelineOrdering(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	t1 := now.Add(-24 * time.Hour)
	t2 := now.Add(-48 * time.Hour)
	t3 := now.Add(-72 * time.Hour)

	loans := []models.LoanModel{loanAt("loan-old", t3), loanAt("loan-new", t1)}
	reservations := []models.ReservationModel{reservationAt("res-mid", &t2)}

	records := buildTimeline(loans, reservations, nil, nil, now)

	require.Len(t, records, 3)
	assert.Equal(t, "loan-new", records[0].Id)
	assert.Equal(t, "res-mid", records[1].Id)
	assert.Equal(t, "loan-old", records[2].Id)
	assert.Equal(t, dtos.RecordKindLoan, records[0].Kind)
	assert.Equal(t, dtos.RecordKindReservation, records[1].Kind)
}

func TestTimelineNilExpeditSortsLast(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	t1 := now.Add(-24 * time.Hour)

	reservations := []models.ReservationModel{
		reservationAt("res-untracked", nil),
		reservationAt("res-dated", &t1),
	}

	records := buildTimeline(nil, reservations, nil, nil, now)

	require.Len(t, records, 2)
	assert.Equal(t, "res-dated", records[0].Id)
	assert.Equal(t, "res-untracked", records[1].Id)
	assert.Nil(t, records[1].Expedit)
}

func TestTimelineRangeFilter(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	t1 := now.Add(-24 * time.Hour)
	t2 := now.Add(-48 * time.Hour)
	t3 := now.Add(-72 * time.Hour)

	loans := []models.LoanModel{loanAt("loan-inside", t2)}
	reservations := []models.ReservationModel{
		reservationAt("res-edge", &t1), // on the boundary, still included
		reservationAt("res-before", &t3),
		reservationAt("res-untracked", nil),
	}

	start := t2
	end := t1
	records := buildTimeline(loans, reservations, &start, &end, now)

	require.Len(t, records, 2)
	assert.Equal(t, "res-edge", records[0].Id)
	assert.Equal(t, "loan-inside", records[1].Id)
}

func TestTimelineEmphasis(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	active := loanAt("loan-active", yesterday)

	overdue := loanAt("loan-overdue", lastWeek)
	overdue.DueDate = yesterday

	returned := loanAt("loan-returned", lastWeek)
	returned.DueDate = yesterday
	returned.IsActive = false
	returned.ReturnedAt = &yesterday

	reserved := reservationAt("res-open", &yesterday)
	cancelled := reservationAt("res-cancelled", &yesterday)
	cancelled.DeletedAt = gorm.DeletedAt{Time: now, Valid: true}

	records := buildTimeline(
		[]models.LoanModel{active, overdue, returned},
		[]models.ReservationModel{reserved, cancelled},
		nil, nil, now,
	)

	byID := make(map[string]dtos.TimelineRecordDTO, len(records))
	for _, record := range records {
		byID[record.Id] = record
	}

	assert.Equal(t, dtos.EmphasisActive, byID["loan-active"].Emphasis)
	assert.Equal(t, dtos.EmphasisOverdue, byID["loan-overdue"].Emphasis)
	assert.Equal(t, dtos.EmphasisReturned, byID["loan-returned"].Emphasis)
	assert.Equal(t, dtos.EmphasisReserved, byID["res-open"].Emphasis)
	assert.Equal(t, dtos.EmphasisCancelled, byID["res-cancelled"].Emphasis)

	// a returned loan past its due date is returned, never overdue
	require.NotNil(t, byID["loan-returned"].IsOverdue)
	assert.False(t, *byID["loan-returned"].IsOverdue)
	require.NotNil(t, byID["loan-overdue"].RemainingDays)
	assert.Equal(t, -1, *byID["loan-overdue"].RemainingDays)
}

func TestUserTimelineMergesHistories(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")
	other := createUser(t, env, "other@libritrack.local")

	loan, err := env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)
	_, err = env.loans.ReturnLoan(loan.Id)
	require.NoError(t, err)

	reservation, err := env.reservations.CreateReservation(user.Email, book.ISBN)
	require.NoError(t, err)
	require.NoError(t, env.reservations.CancelReservation(reservation.Id))

	// records of other users never leak into the view
	_, err = env.reservations.CreateReservation(other.Email, book.ISBN)
	require.NoError(t, err)

	records, err := env.timeline.UserTimeline(user.Id, nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byKind := make(map[string]dtos.TimelineRecordDTO, len(records))
	for _, record := range records {
		byKind[record.Kind] = record
	}
	assert.Equal(t, dtos.EmphasisReturned, byKind[dtos.RecordKindLoan].Emphasis)
	assert.Equal(t, dtos.EmphasisCancelled, byKind[dtos.RecordKindReservation].Emphasis)
	assert.Equal(t, book.Title, byKind[dtos.RecordKindLoan].BookTitle)

	bookRecords, err := env.timeline.BookTimeline(book.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, bookRecords, 3)
}
