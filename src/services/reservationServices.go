package services

import (
	"errors"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type ReservationService struct {
	db *gorm.DB
}

// NewReservationService creates a new instance of ReservationService
func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// GetAllReservations retrieves non-cancelled reservations page by page,
// optionally scoped to a user or book
func (s *ReservationService) GetAllReservations(page, perPage int, userID *int, bookID *int) ([]models.ReservationModel, dtos.PaginationMeta, error) {
	query := s.db.Model(&models.ReservationModel{}).
		Preload("User").
		Preload("Book").
		Order("expedit DESC")

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if bookID != nil {
		query = query.Where("book_id = ?", *bookID)
	}

	var reservations []models.ReservationModel
	meta, err := paginate(query, page, perPage, &reservations)
	return reservations, meta, err
}

// GetReservationByID retrieves a Reservation record by its ID
func (s *ReservationService) GetReservationByID(id string) (*models.ReservationModel, error) {
	var reservation models.ReservationModel
	if err := s.db.Preload("User").Preload("Book").First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreateReservation queues a reservation for the book, resolved by ISBN, on
// behalf of the user resolved by email. Reservations never hold capacity and
// are unconstrained by the book's loan state.
func (s *ReservationService) CreateReservation(email, isbn string) (*models.ReservationModel, error) {
	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newDomainError(ErrUnknownUser, "user", "no user with email %s", email)
		}
		return nil, err
	}

	var book models.BookModel
	if err := s.db.Where("isbn = ?", isbn).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newDomainError(ErrUnknownBook, "book", "no book with isbn %s", isbn)
		}
		return nil, err
	}

	now := time.Now()
	reservation := &models.ReservationModel{
		BookId:  book.ID,
		UserId:  user.Id,
		Expedit: &now,
	}

	if err := s.db.Create(reservation).Error; err != nil {
		return nil, err
	}

	reservation.User = &user
	reservation.Book = &book

	return reservation, nil
}

// CancelReservation soft-deletes the reservation. The row is never hard
// deleted, the timeline still shows it as cancelled.
func (s *ReservationService) CancelReservation(id string) error {
	var reservation models.ReservationModel
	if err := s.db.First(&reservation, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Delete(&reservation).Error
}
