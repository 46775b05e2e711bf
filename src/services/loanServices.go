package services

import (
	"errors"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type LoanService struct {
	db          *gorm.DB
	capacity    *CapacityService
	bookService *BookService // referencia opcional para invalidar caché
}

// NewLoanService creates a new instance of LoanService.
// bookService may be nil when no cache invalidation is needed.
func NewLoanService(db *gorm.DB, capacity *CapacityService, bookService *BookService) *LoanService {
	return &LoanService{
		db:          db,
		capacity:    capacity,
		bookService: bookService,
	}
}

// GetAllLoans retrieves loans page by page, optionally scoped to a user or book
func (s *LoanService) GetAllLoans(page, perPage int, userID *int, bookID *int) ([]dtos.LoanResourceDTO, dtos.PaginationMeta, error) {
	query := s.db.Model(&models.LoanModel{}).
		Preload("User").
		Preload("Book").
		Order("created_at DESC")

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if bookID != nil {
		query = query.Where("book_id = ?", *bookID)
	}

	var loans []models.LoanModel
	meta, err := paginate(query, page, perPage, &loans)
	if err != nil {
		return nil, meta, err
	}

	now := time.Now()
	resources := make([]dtos.LoanResourceDTO, 0, len(loans))
	for i := range loans {
		resources = append(resources, dtos.NewLoanResource(&loans[i], now))
	}

	return resources, meta, nil
}

// GetLoanByID retrieves a Loan record by its ID with derived facts attached
func (s *LoanService) GetLoanByID(id string) (*dtos.LoanResourceDTO, error) {
	var loan models.LoanModel

	result := s.db.
		Preload("User").
		Preload("Book").
		First(&loan, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}

	resource := dtos.NewLoanResource(&loan, time.Now())
	return &resource, nil
}

// IssueLoan creates a new loan for the book with the given ISBN, issued to the
// user resolved by email. The "no existing active loan" check and the insert
// are one serialized check-then-commit per book.
func (s *LoanService) IssueLoan(email, isbn string, dueDate time.Time) (*models.LoanModel, error) {
	if !dueDate.After(time.Now()) {
		return nil, newDomainError(ErrInvalidDueDate, "loan", "due date must be strictly in the future")
	}

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

	loan := &models.LoanModel{
		BookId:   book.ID,
		UserId:   user.Id,
		DueDate:  dueDate,
		IsActive: true,
	}

	// the lock covers the whole check-then-commit for this book
	unlock := s.capacity.LockParent(nodeBook, book.ID)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1) Verificar que el libro no tenga otro préstamo activo
		var active int64
		if err := tx.Model(&models.LoanModel{}).
			Where("book_id = ? AND is_active = ?", book.ID, true).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return newDomainError(ErrAlreadyLoaned, "book", "book %s already has an active loan", isbn)
		}

		// 2) Crear el préstamo
		if err := tx.Create(loan).Error; err != nil {
			return err
		}

		// 3) Re-check: a conflicting writer that slipped past the check rolls
		// the whole transaction back.
		if err := tx.Model(&models.LoanModel{}).
			Where("book_id = ? AND is_active = ?", book.ID, true).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 1 {
			return newDomainError(ErrConcurrentModification, "loan", "issuance for book %s conflicted with a concurrent writer", isbn)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").Preload("Book").First(loan, "id = ?", loan.Id).Error; err != nil {
		return nil, err
	}

	if s.bookService != nil {
		s.bookService.InvalidateBookCache(loan.BookId)
	}

	return loan, nil
}

// ReturnLoan closes an active loan. Returning twice always fails with
// AlreadyReturned and never touches returned_at again.
func (s *LoanService) ReturnLoan(id string) (*models.LoanModel, error) {
	var loan models.LoanModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, "id = ?", id).Error; err != nil {
			return err
		}

		if !loan.IsActive {
			return newDomainError(ErrAlreadyReturned, "loan", "loan %s is already returned", id)
		}

		now := time.Now()
		loan.IsActive = false
		loan.ReturnedAt = &now

		return tx.Model(&loan).Updates(map[string]interface{}{
			"is_active":   false,
			"returned_at": now,
		}).Error
	})

	if err != nil {
		return nil, err
	}

	if s.bookService != nil {
		s.bookService.InvalidateBookCache(loan.BookId)
	}

	return &loan, nil
}

// UpdateLoan changes the due date and optionally reassigns the loan to another
// user (by email). Allowed only while the loan is active; it never touches
// is_active or returned_at.
func (s *LoanService) UpdateLoan(id string, newDueDate time.Time, newUserEmail string) (*models.LoanModel, error) {
	if !newDueDate.After(time.Now()) {
		return nil, newDomainError(ErrInvalidDueDate, "loan", "due date must be strictly in the future")
	}

	var loan models.LoanModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, "id = ?", id).Error; err != nil {
			return err
		}

		if !loan.IsActive {
			return newDomainError(ErrAlreadyReturned, "loan", "loan %s is already returned and cannot change", id)
		}

		updates := map[string]interface{}{
			"due_date": newDueDate,
		}

		if newUserEmail != "" {
			var user models.UserModel
			if err := tx.Where("email = ?", newUserEmail).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return newDomainError(ErrUnknownUser, "user", "no user with email %s", newUserEmail)
				}
				return err
			}
			updates["user_id"] = user.Id
		}

		return tx.Model(&loan).Updates(updates).Error
	})

	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").Preload("Book").First(&loan, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &loan, nil
}
