package services

import (
	"errors"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type ZoneService struct {
	db       *gorm.DB
	capacity *CapacityService
}

// ZoneFilters are the raw-text list filters accepted by the zones index
type ZoneFilters struct {
	Number      *int
	Capacity    *int
	GenreName   string
	FloorNumber *int
}

// NewZoneService creates a new instance of ZoneService
func NewZoneService(db *gorm.DB, capacity *CapacityService) *ZoneService {
	return &ZoneService{db: db, capacity: capacity}
}

// GetAllZones retrieves zones page by page with optional filters
func (s *ZoneService) GetAllZones(page, perPage int, filters ZoneFilters) ([]models.ZoneModel, dtos.PaginationMeta, error) {
	query := s.db.Model(&models.ZoneModel{}).Preload("Floor").Order("created_at DESC")

	if filters.Number != nil {
		query = query.Where("number = ?", *filters.Number)
	}
	if filters.Capacity != nil {
		query = query.Where("capacity = ?", *filters.Capacity)
	}
	if filters.GenreName != "" {
		query = query.Where("genre_name LIKE ?", "%"+filters.GenreName+"%")
	}
	if filters.FloorNumber != nil {
		query = query.Joins("JOIN floor_models ON floor_models.id = zone_models.floor_id").
			Where("floor_models.floor_number = ?", *filters.FloorNumber)
	}

	var zones []models.ZoneModel
	meta, err := paginate(query, page, perPage, &zones)
	return zones, meta, err
}

// GetZoneByID retrieves a Zone record by its ID
func (s *ZoneService) GetZoneByID(id int) (*models.ZoneModel, error) {
	var zone models.ZoneModel
	if err := s.db.Preload("Floor").First(&zone, id).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

// CreateZone places a new zone under its floor. The admission check and the
// insert run as one serialized check-then-commit against the floor.
func (s *ZoneService) CreateZone(zone *models.ZoneModel) (*models.ZoneModel, error) {
	if zone.Capacity <= 0 {
		return nil, newDomainError(ErrInvalidValue, "zone", "capacity must be a positive integer")
	}

	unlock := s.capacity.LockParent(nodeFloor, zone.FloorId)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var floor models.FloorModel
		if err := tx.First(&floor, zone.FloorId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrInvalidParent, "floor", "floor %d does not exist", zone.FloorId)
			}
			return err
		}

		if err := s.capacity.CheckAdmission(tx, &models.ZoneModel{}, "floor_id", floor.ID, floor.Capacity, "floor", 0); err != nil {
			return err
		}
		if err := tx.Create(zone).Error; err != nil {
			return err
		}

		return s.capacity.VerifyPlacement(tx, &models.ZoneModel{}, "floor_id", floor.ID, floor.Capacity, "floor")
	})

	if err != nil {
		return nil, err
	}
	return zone, nil
}

// UpdateZone updates zone fields. Moving the zone to another floor re-runs the
// admission check against the target floor; shrinking capacity below the
// current bookcase count is rejected.
func (s *ZoneService) UpdateZone(id int, updated *models.ZoneModel) (*models.ZoneModel, error) {
	var zone models.ZoneModel
	if err := s.db.First(&zone, id).Error; err != nil {
		return nil, err
	}

	if updated.Capacity <= 0 {
		return nil, newDomainError(ErrInvalidValue, "zone", "capacity must be a positive integer")
	}

	targetFloor := zone.FloorId
	if updated.FloorId != 0 {
		targetFloor = updated.FloorId
	}

	unlock := s.capacity.LockParent(nodeFloor, targetFloor)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var floor models.FloorModel
		if err := tx.First(&floor, targetFloor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrInvalidParent, "floor", "floor %d does not exist", targetFloor)
			}
			return err
		}

		if targetFloor != zone.FloorId {
			if err := s.capacity.CheckAdmission(tx, &models.ZoneModel{}, "floor_id", floor.ID, floor.Capacity, "floor", 0); err != nil {
				return err
			}
		}

		count, err := s.capacity.Occupancy(tx, &models.BookcaseModel{}, "zone_id", id)
		if err != nil {
			return err
		}
		if int64(updated.Capacity) < count {
			return newDomainError(ErrCapacityExceeded, "zone", "zone %d already holds %d bookcases, capacity cannot shrink to %d", id, count, updated.Capacity)
		}

		return tx.Model(&zone).Updates(map[string]interface{}{
			"number":     updated.Number,
			"capacity":   updated.Capacity,
			"genre_name": updated.GenreName,
			"floor_id":   targetFloor,
		}).Error
	})

	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// DeleteZone removes a zone; cascade soft-deletes its bookcases and books
func (s *ZoneService) DeleteZone(id int, cascade bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var zone models.ZoneModel
		if err := tx.First(&zone, id).Error; err != nil {
			return err
		}

		var bookcaseIDs []int
		if err := tx.Model(&models.BookcaseModel{}).Where("zone_id = ?", id).Pluck("id", &bookcaseIDs).Error; err != nil {
			return err
		}

		if len(bookcaseIDs) > 0 {
			if !cascade {
				return newDomainError(ErrNotEmpty, "zone", "zone %d still owns %d bookcases", id, len(bookcaseIDs))
			}
			if err := releaseBookcases(tx, bookcaseIDs); err != nil {
				return err
			}
		}

		return tx.Delete(&models.ZoneModel{}, id).Error
	})
}
