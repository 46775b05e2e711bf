package services

import (
	"errors"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type BookcaseService struct {
	db       *gorm.DB
	capacity *CapacityService
}

// NewBookcaseService creates a new instance of BookcaseService
func NewBookcaseService(db *gorm.DB, capacity *CapacityService) *BookcaseService {
	return &BookcaseService{db: db, capacity: capacity}
}

// GetAllBookcases retrieves bookcases page by page, optionally scoped to a zone
func (s *BookcaseService) GetAllBookcases(page, perPage int, zoneID *int) ([]models.BookcaseModel, dtos.PaginationMeta, error) {
	query := s.db.Model(&models.BookcaseModel{}).Preload("Zone").Preload("Zone.Floor").Order("created_at DESC")
	if zoneID != nil {
		query = query.Where("zone_id = ?", *zoneID)
	}

	var bookcases []models.BookcaseModel
	meta, err := paginate(query, page, perPage, &bookcases)
	return bookcases, meta, err
}

// GetBookcaseByID retrieves a Bookcase record by its ID
func (s *BookcaseService) GetBookcaseByID(id int) (*models.BookcaseModel, error) {
	var bookcase models.BookcaseModel
	if err := s.db.Preload("Zone").Preload("Zone.Floor").First(&bookcase, id).Error; err != nil {
		return nil, err
	}
	return &bookcase, nil
}

// CreateBookcase places a new bookcase under its zone, serialized against the
// zone so the capacity check and the insert commit together.
func (s *BookcaseService) CreateBookcase(bookcase *models.BookcaseModel) (*models.BookcaseModel, error) {
	if bookcase.Capacity <= 0 {
		return nil, newDomainError(ErrInvalidValue, "bookcase", "capacity must be a positive integer")
	}

	unlock := s.capacity.LockParent(nodeZone, bookcase.ZoneId)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var zone models.ZoneModel
		if err := tx.First(&zone, bookcase.ZoneId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrInvalidParent, "zone", "zone %d does not exist", bookcase.ZoneId)
			}
			return err
		}

		if err := s.capacity.CheckAdmission(tx, &models.BookcaseModel{}, "zone_id", zone.ID, zone.Capacity, "zone", 0); err != nil {
			return err
		}
		if err := tx.Create(bookcase).Error; err != nil {
			return err
		}

		return s.capacity.VerifyPlacement(tx, &models.BookcaseModel{}, "zone_id", zone.ID, zone.Capacity, "zone")
	})

	if err != nil {
		return nil, err
	}
	return bookcase, nil
}

// UpdateBookcase updates bookcase fields, re-validating admission on a zone
// change and the occupancy invariant on a capacity change.
func (s *BookcaseService) UpdateBookcase(id int, updated *models.BookcaseModel) (*models.BookcaseModel, error) {
	var bookcase models.BookcaseModel
	if err := s.db.First(&bookcase, id).Error; err != nil {
		return nil, err
	}

	if updated.Capacity <= 0 {
		return nil, newDomainError(ErrInvalidValue, "bookcase", "capacity must be a positive integer")
	}

	targetZone := bookcase.ZoneId
	if updated.ZoneId != 0 {
		targetZone = updated.ZoneId
	}

	unlock := s.capacity.LockParent(nodeZone, targetZone)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var zone models.ZoneModel
		if err := tx.First(&zone, targetZone).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrInvalidParent, "zone", "zone %d does not exist", targetZone)
			}
			return err
		}

		if targetZone != bookcase.ZoneId {
			if err := s.capacity.CheckAdmission(tx, &models.BookcaseModel{}, "zone_id", zone.ID, zone.Capacity, "zone", 0); err != nil {
				return err
			}
		}

		count, err := s.capacity.Occupancy(tx, &models.BookModel{}, "bookcase_id", id)
		if err != nil {
			return err
		}
		if int64(updated.Capacity) < count {
			return newDomainError(ErrCapacityExceeded, "bookcase", "bookcase %d already holds %d books, capacity cannot shrink to %d", id, count, updated.Capacity)
		}

		return tx.Model(&bookcase).Updates(map[string]interface{}{
			"number":   updated.Number,
			"capacity": updated.Capacity,
			"zone_id":  targetZone,
		}).Error
	})

	if err != nil {
		return nil, err
	}
	return &bookcase, nil
}

// DeleteBookcase removes a bookcase; cascade soft-deletes the books it holds
func (s *BookcaseService) DeleteBookcase(id int, cascade bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var bookcase models.BookcaseModel
		if err := tx.First(&bookcase, id).Error; err != nil {
			return err
		}

		var bookCount int64
		if err := tx.Model(&models.BookModel{}).Where("bookcase_id = ?", id).Count(&bookCount).Error; err != nil {
			return err
		}

		if bookCount > 0 {
			if !cascade {
				return newDomainError(ErrNotEmpty, "bookcase", "bookcase %d still holds %d books", id, bookCount)
			}
			return releaseBookcases(tx, []int{id})
		}

		return tx.Delete(&models.BookcaseModel{}, id).Error
	})
}
