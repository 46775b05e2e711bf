package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db           *gorm.DB
	capacity     *CapacityService
	floors       *FloorService
	zones        *ZoneService
	bookcases    *BookcaseService
	books        *BookService
	loans        *LoanService
	reservations *ReservationService
	timeline     *TimelineService
	users        *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.FloorModel{},
		&models.ZoneModel{},
		&models.BookcaseModel{},
		&models.GenreModel{},
		&models.BookModel{},
		&models.LoanModel{},
		&models.ReservationModel{},
	))

	capacity := NewCapacityService(db)
	books := NewBookService(db, capacity)

	return &testEnv{
		db:           db,
		capacity:     capacity,
		floors:       NewFloorService(db, capacity),
		zones:        NewZoneService(db, capacity),
		bookcases:    NewBookcaseService(db, capacity),
		books:        books,
		loans:        NewLoanService(db, capacity, books),
		reservations: NewReservationService(db),
		timeline:     NewTimelineService(db),
		users:        NewUserService(db),
	}
}

func createFloor(t *testing.T, env *testEnv, number, capacity int) *models.FloorModel {
	t.Helper()
	floor, err := env.floors.CreateFloor(&models.FloorModel{FloorNumber: number, Capacity: capacity})
	require.NoError(t, err)
	return floor
}

func createZone(t *testing.T, env *testEnv, floorID, number, capacity int) *models.ZoneModel {
	t.Helper()
	zone, err := env.zones.CreateZone(&models.ZoneModel{
		Number:    number,
		Capacity:  capacity,
		GenreName: "Novel",
		FloorId:   floorID,
	})
	require.NoError(t, err)
	return zone
}

func createBookcase(t *testing.T, env *testEnv, zoneID, number, capacity int) *models.BookcaseModel {
	t.Helper()
	bookcase, err := env.bookcases.CreateBookcase(&models.BookcaseModel{
		Number:   number,
		Capacity: capacity,
		ZoneId:   zoneID,
	})
	require.NoError(t, err)
	return bookcase
}

func createBook(t *testing.T, env *testEnv, bookcaseID int, isbn string) *models.BookModel {
	t.Helper()
	book, err := env.books.CreateBook(&models.BookModel{
		Title:      "Book " + isbn,
		Author:     "Author",
		ISBN:       isbn,
		BookcaseId: bookcaseID,
	}, nil)
	require.NoError(t, err)
	return book
}

func createUser(t *testing.T, env *testEnv, email string) *models.UserModel {
	t.Helper()
	user, err := env.users.CreateUser(&models.UserModel{
		Name:     "user",
		Email:    email,
		Password: "secret",
	})
	require.NoError(t, err)
	return user
}

// shelvedWorld builds one floor/zone/bookcase path with plenty of room
func shelvedWorld(t *testing.T, env *testEnv) *models.BookcaseModel {
	t.Helper()
	floor := createFloor(t, env, 1, 4)
	zone := createZone(t, env, floor.ID, 1, 4)
	return createBookcase(t, env, zone.ID, 1, 20)
}

func uniqueISBN(i int) string {
	return fmt.Sprintf("978000000%04d", i)
}

func daysFromNow(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour)
}
