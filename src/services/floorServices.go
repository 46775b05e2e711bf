package services

import (
	"errors"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type FloorService struct {
	db       *gorm.DB
	capacity *CapacityService
}

// NewFloorService creates a new instance of FloorService
func NewFloorService(db *gorm.DB, capacity *CapacityService) *FloorService {
	return &FloorService{db: db, capacity: capacity}
}

// GetAllFloors retrieves floors page by page, optionally filtered by floor number
func (s *FloorService) GetAllFloors(page, perPage int, floorNumber *int) ([]models.FloorModel, dtos.PaginationMeta, error) {
	query := s.db.Model(&models.FloorModel{}).Order("created_at DESC")
	if floorNumber != nil {
		query = query.Where("floor_number = ?", *floorNumber)
	}

	var floors []models.FloorModel
	meta, err := paginate(query, page, perPage, &floors)
	return floors, meta, err
}

// GetFloorByID retrieves a Floor record by its ID
func (s *FloorService) GetFloorByID(id int) (*models.FloorModel, error) {
	var floor models.FloorModel
	if err := s.db.First(&floor, id).Error; err != nil {
		return nil, err
	}
	return &floor, nil
}

// CreateFloor creates a new Floor record in the database
func (s *FloorService) CreateFloor(floor *models.FloorModel) (*models.FloorModel, error) {
	if floor.FloorNumber <= 0 {
		return nil, newDomainError(ErrInvalidValue, "floor", "floor number must be a positive integer")
	}
	if floor.Capacity <= 0 {
		return nil, newDomainError(ErrInvalidValue, "floor", "capacity must be a positive integer")
	}

	if err := s.db.Create(floor).Error; err != nil {
		return nil, err
	}
	return floor, nil
}

// UpdateFloor updates floor number and capacity. Shrinking the capacity below
// the current zone count would break the occupancy invariant and is rejected.
func (s *FloorService) UpdateFloor(id int, updated *models.FloorModel) (*models.FloorModel, error) {
	var floor models.FloorModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&floor, id).Error; err != nil {
			return err
		}

		if updated.Capacity <= 0 {
			return newDomainError(ErrInvalidValue, "floor", "capacity must be a positive integer")
		}

		count, err := s.capacity.Occupancy(tx, &models.ZoneModel{}, "floor_id", id)
		if err != nil {
			return err
		}
		if int64(updated.Capacity) < count {
			return newDomainError(ErrCapacityExceeded, "floor", "floor %d already holds %d zones, capacity cannot shrink to %d", id, count, updated.Capacity)
		}

		updated.ID = id
		return tx.Model(&floor).Updates(map[string]interface{}{
			"floor_number": updated.FloorNumber,
			"capacity":     updated.Capacity,
		}).Error
	})

	if err != nil {
		return nil, err
	}
	return &floor, nil
}

// DeleteFloor removes a floor. The normal path requires the floor to own zero
// zones; cascade is the destructive admin override and soft-deletes the whole
// subtree in one transaction.
func (s *FloorService) DeleteFloor(id int, cascade bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var floor models.FloorModel
		if err := tx.First(&floor, id).Error; err != nil {
			return err
		}

		var zoneIDs []int
		if err := tx.Model(&models.ZoneModel{}).Where("floor_id = ?", id).Pluck("id", &zoneIDs).Error; err != nil {
			return err
		}

		if len(zoneIDs) > 0 {
			if !cascade {
				return newDomainError(ErrNotEmpty, "floor", "floor %d still owns %d zones", id, len(zoneIDs))
			}
			if err := releaseZones(tx, zoneIDs); err != nil {
				return err
			}
		}

		return tx.Delete(&models.FloorModel{}, id).Error
	})
}

// FloorOccupancy returns the current zone count and the capacity of a floor
func (s *FloorService) FloorOccupancy(id int) (int64, int, error) {
	var floor models.FloorModel
	if err := s.db.First(&floor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, newDomainError(ErrInvalidParent, "floor", "floor %d does not exist", id)
		}
		return 0, 0, err
	}

	count, err := s.capacity.Occupancy(s.db, &models.ZoneModel{}, "floor_id", id)
	return count, floor.Capacity, err
}
