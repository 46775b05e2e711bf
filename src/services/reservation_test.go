package services

import (
	"errors"
	"testing"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateReservation(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	reservation, err := env.reservations.CreateReservation(user.Email, book.ISBN)
	require.NoError(t, err)
	assert.NotEmpty(t, reservation.Id)
	require.NotNil(t, reservation.Expedit)
	assert.Equal(t, user.Id, reservation.UserId)
	assert.Equal(t, book.ID, reservation.BookId)

	// reservations queue freely, even while the book is out on loan
	_, err = env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)
	_, err = env.reservations.CreateReservation(user.Email, book.ISBN)
	require.NoError(t, err)

	_, err = env.reservations.CreateReservation("nobody@libritrack.local", book.ISBN)
	assert.Equal(t, ErrUnknownUser, KindOf(err))

	_, err = env.reservations.CreateReservation(user.Email, "9999999999999")
	assert.Equal(t, ErrUnknownBook, KindOf(err))
}

func TestCancelReservationIsSoft(t *testing.T) {
	env := newTestEnv(t)
	bookcase := shelvedWorld(t, env)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	reservation, err := env.reservations.CreateReservation(user.Email, book.ISBN)
	require.NoError(t, err)

	require.NoError(t, env.reservations.CancelReservation(reservation.Id))

	// gone from the live listings
	_, err = env.reservations.GetReservationByID(reservation.Id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	list, meta, err := env.reservations.GetAllReservations(1, 10, &user.Id, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, meta.Total)

	// the row itself survives, flagged as cancelled
	var stored models.ReservationModel
	require.NoError(t, env.db.Unscoped().First(&stored, "id = ?", reservation.Id).Error)
	assert.True(t, stored.DeletedAt.Valid)

	// cancelling twice is a not-found, not a second cancellation
	err = env.reservations.CancelReservation(reservation.Id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
