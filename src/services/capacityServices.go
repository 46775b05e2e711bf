package services

import (
	"fmt"
	"sync"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

// Node kinds used to scope placement locks
const (
	nodeFloor    = "floor"
	nodeZone     = "zone"
	nodeBookcase = "bookcase"
	nodeBook     = "book"
)

// CapacityService is the gatekeeper for every create/move across the
// floor -> zone -> bookcase -> book hierarchy. The check-then-commit of a
// placement is serialized per parent node, so two near-simultaneous admits
// can never both pass the check before either commits.
type CapacityService struct {
	db    *gorm.DB
	mutex sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCapacityService creates a new instance of CapacityService
func NewCapacityService(db *gorm.DB) *CapacityService {
	return &CapacityService{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

// LockParent acquires the placement lock for a parent node and returns the
// release function. Callers hold it across the whole check-then-commit.
func (s *CapacityService) LockParent(kind string, id int) func() {
	s.mutex.Lock()
	key := fmt.Sprintf("%s:%d", kind, id)
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mutex.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Occupancy counts the live direct children under a parent node.
// Soft-deleted children never count.
func (s *CapacityService) Occupancy(tx *gorm.DB, child interface{}, parentColumn string, parentID int) (int64, error) {
	return s.occupancy(tx, child, parentColumn, parentID, 0)
}

func (s *CapacityService) occupancy(tx *gorm.DB, child interface{}, parentColumn string, parentID int, excludeID int) (int64, error) {
	var count int64
	query := tx.Model(child).Where(parentColumn+" = ?", parentID)
	if excludeID != 0 {
		// a move within the same parent must not count the child against itself
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

// CanAdmit reports whether the parent still has room for one more child
func (s *CapacityService) CanAdmit(tx *gorm.DB, child interface{}, parentColumn string, parentID int, capacity int) (bool, error) {
	count, err := s.Occupancy(tx, child, parentColumn, parentID)
	if err != nil {
		return false, err
	}
	return count < int64(capacity), nil
}

// CheckAdmission fails with CapacityExceeded when the parent is full.
func (s *CapacityService) CheckAdmission(tx *gorm.DB, child interface{}, parentColumn string, parentID int, capacity int, entity string, excludeID int) error {
	count, err := s.occupancy(tx, child, parentColumn, parentID, excludeID)
	if err != nil {
		return err
	}
	if count >= int64(capacity) {
		return newDomainError(ErrCapacityExceeded, entity, "%s %d is full (%d/%d)", entity, parentID, count, capacity)
	}
	return nil
}

// VerifyPlacement re-counts after the write, still inside the transaction.
// A count above capacity means a conflicting writer slipped past the check:
// the transaction rolls back and the caller must retry.
func (s *CapacityService) VerifyPlacement(tx *gorm.DB, child interface{}, parentColumn string, parentID int, capacity int, entity string) error {
	count, err := s.Occupancy(tx, child, parentColumn, parentID)
	if err != nil {
		return err
	}
	if count > int64(capacity) {
		return newDomainError(ErrConcurrentModification, entity, "placement on %s %d conflicted with a concurrent writer", entity, parentID)
	}
	return nil
}

// releaseBookcases soft-deletes bookcases together with their books.
// Deleting never needs capacity checks, but books still on loan block the
// cascade; outstanding reservations on the removed books are soft-cancelled.
func releaseBookcases(tx *gorm.DB, bookcaseIDs []int) error {
	if len(bookcaseIDs) == 0 {
		return nil
	}

	var bookIDs []int
	if err := tx.Model(&models.BookModel{}).Where("bookcase_id IN ?", bookcaseIDs).Pluck("id", &bookIDs).Error; err != nil {
		return err
	}

	if len(bookIDs) > 0 {
		var activeLoans int64
		if err := tx.Model(&models.LoanModel{}).
			Where("book_id IN ? AND is_active = ?", bookIDs, true).
			Count(&activeLoans).Error; err != nil {
			return err
		}
		if activeLoans > 0 {
			return newDomainError(ErrAlreadyLoaned, "book", "%d books in the subtree are still on loan", activeLoans)
		}

		if err := tx.Where("book_id IN ?", bookIDs).Delete(&models.ReservationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", bookIDs).Delete(&models.BookModel{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", bookcaseIDs).Delete(&models.BookcaseModel{}).Error
}

// releaseZones soft-deletes zones and, transitively, their bookcases and books
func releaseZones(tx *gorm.DB, zoneIDs []int) error {
	if len(zoneIDs) == 0 {
		return nil
	}

	var bookcaseIDs []int
	if err := tx.Model(&models.BookcaseModel{}).Where("zone_id IN ?", zoneIDs).Pluck("id", &bookcaseIDs).Error; err != nil {
		return err
	}
	if err := releaseBookcases(tx, bookcaseIDs); err != nil {
		return err
	}

	return tx.Where("id IN ?", zoneIDs).Delete(&models.ZoneModel{}).Error
}
