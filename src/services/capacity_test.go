package services

import (
	"sync"
	"testing"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateZoneRespectsFloorCapacity(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 2)

	zoneA := createZone(t, env, floor.ID, 1, 4)
	createZone(t, env, floor.ID, 2, 4)

	_, err := env.zones.CreateZone(&models.ZoneModel{
		Number: 3, Capacity: 4, GenreName: "Novel", FloorId: floor.ID,
	})
	require.Error(t, err)
	assert.Equal(t, ErrCapacityExceeded, KindOf(err))

	// freeing a slot makes the rejected placement possible again
	require.NoError(t, env.zones.DeleteZone(zoneA.ID, false))

	_, err = env.zones.CreateZone(&models.ZoneModel{
		Number: 3, Capacity: 4, GenreName: "Novel", FloorId: floor.ID,
	})
	require.NoError(t, err)

	count, capacity, err := env.floors.FloorOccupancy(floor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 2, capacity)
}

func TestCreateZoneUnknownFloor(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.zones.CreateZone(&models.ZoneModel{
		Number: 1, Capacity: 4, GenreName: "Novel", FloorId: 999,
	})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidParent, KindOf(err))
}

func TestCreateFloorRejectsNonPositiveValues(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.floors.CreateFloor(&models.FloorModel{FloorNumber: 1, Capacity: 0})
	assert.Equal(t, ErrInvalidValue, KindOf(err))

	_, err = env.floors.CreateFloor(&models.FloorModel{FloorNumber: 0, Capacity: 2})
	assert.Equal(t, ErrInvalidValue, KindOf(err))
}

func TestShrinkFloorBelowOccupancy(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 3)
	createZone(t, env, floor.ID, 1, 4)
	createZone(t, env, floor.ID, 2, 4)

	_, err := env.floors.UpdateFloor(floor.ID, &models.FloorModel{FloorNumber: 1, Capacity: 1})
	require.Error(t, err)
	assert.Equal(t, ErrCapacityExceeded, KindOf(err))

	_, err = env.floors.UpdateFloor(floor.ID, &models.FloorModel{FloorNumber: 1, Capacity: 2})
	require.NoError(t, err)
}

func TestSoftDeletedBooksDoNotCount(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 4)
	zone := createZone(t, env, floor.ID, 1, 4)
	bookcase := createBookcase(t, env, zone.ID, 1, 1)

	book := createBook(t, env, bookcase.ID, uniqueISBN(1))

	_, err := env.books.CreateBook(&models.BookModel{
		Title: "Second", Author: "A", ISBN: uniqueISBN(2), BookcaseId: bookcase.ID,
	}, nil)
	assert.Equal(t, ErrCapacityExceeded, KindOf(err))

	require.NoError(t, env.books.DeleteBook(book.ID))

	_, err = env.books.CreateBook(&models.BookModel{
		Title: "Second", Author: "A", ISBN: uniqueISBN(2), BookcaseId: bookcase.ID,
	}, nil)
	require.NoError(t, err)
}

func TestConcurrentBookPlacement(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 4)
	zone := createZone(t, env, floor.ID, 1, 4)
	bookcase := createBookcase(t, env, zone.ID, 1, 5)

	createBook(t, env, bookcase.ID, uniqueISBN(1))
	createBook(t, env, bookcase.ID, uniqueISBN(2))

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.books.CreateBook(&models.BookModel{
				Title: "Raced", Author: "A", ISBN: uniqueISBN(100 + i), BookcaseId: bookcase.ID,
			}, nil)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, ErrCapacityExceeded, KindOf(err))
		}
	}
	assert.Equal(t, 3, succeeded)

	var placed int64
	require.NoError(t, env.db.Model(&models.BookModel{}).
		Where("bookcase_id = ?", bookcase.ID).Count(&placed).Error)
	assert.Equal(t, int64(5), placed)
}

func TestMoveBookBetweenBookcases(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 4)
	zone := createZone(t, env, floor.ID, 1, 4)
	source := createBookcase(t, env, zone.ID, 1, 5)
	full := createBookcase(t, env, zone.ID, 2, 1)
	open := createBookcase(t, env, zone.ID, 3, 5)

	createBook(t, env, full.ID, uniqueISBN(1))
	book := createBook(t, env, source.ID, uniqueISBN(2))

	_, err := env.books.MoveBook(book.ID, full.ID)
	require.Error(t, err)
	assert.Equal(t, ErrCapacityExceeded, KindOf(err))

	unchanged, err := env.books.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, source.ID, unchanged.BookcaseId)

	_, err = env.books.MoveBook(book.ID, 999)
	assert.Equal(t, ErrInvalidParent, KindOf(err))

	// moving within the same bookcase must not count the book against itself
	_, err = env.books.MoveBook(book.ID, source.ID)
	require.NoError(t, err)

	moved, err := env.books.MoveBook(book.ID, open.ID)
	require.NoError(t, err)
	assert.Equal(t, open.ID, moved.BookcaseId)
}

func TestDeleteFloorCascade(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 4)
	zone := createZone(t, env, floor.ID, 1, 4)
	bookcase := createBookcase(t, env, zone.ID, 1, 5)
	book := createBook(t, env, bookcase.ID, uniqueISBN(1))
	user := createUser(t, env, "reader@libritrack.local")

	err := env.floors.DeleteFloor(floor.ID, false)
	require.Error(t, err)
	assert.Equal(t, ErrNotEmpty, KindOf(err))

	loan, err := env.loans.IssueLoan(user.Email, book.ISBN, daysFromNow(7))
	require.NoError(t, err)

	// a floor holding an actively loaned book cannot be torn down
	err = env.floors.DeleteFloor(floor.ID, true)
	require.Error(t, err)
	assert.Equal(t, ErrAlreadyLoaned, KindOf(err))

	_, err = env.loans.ReturnLoan(loan.Id)
	require.NoError(t, err)

	require.NoError(t, env.floors.DeleteFloor(floor.ID, true))

	var zones, bookcases, books int64
	require.NoError(t, env.db.Model(&models.ZoneModel{}).Count(&zones).Error)
	require.NoError(t, env.db.Model(&models.BookcaseModel{}).Count(&bookcases).Error)
	require.NoError(t, env.db.Model(&models.BookModel{}).Count(&books).Error)
	assert.Zero(t, zones)
	assert.Zero(t, bookcases)
	assert.Zero(t, books)
}

func TestDeleteZoneCascade(t *testing.T) {
	env := newTestEnv(t)
	floor := createFloor(t, env, 1, 4)
	zone := createZone(t, env, floor.ID, 1, 4)
	bookcase := createBookcase(t, env, zone.ID, 1, 5)
	createBook(t, env, bookcase.ID, uniqueISBN(1))

	err := env.zones.DeleteZone(zone.ID, false)
	assert.Equal(t, ErrNotEmpty, KindOf(err))

	require.NoError(t, env.zones.DeleteZone(zone.ID, true))

	var bookcases int64
	require.NoError(t, env.db.Model(&models.BookcaseModel{}).Count(&bookcases).Error)
	assert.Zero(t, bookcases)
}
