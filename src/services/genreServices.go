package services

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"gorm.io/gorm"
)

type GenreService struct {
	db *gorm.DB
}

// NewGenreService creates a new instance of GenreService
func NewGenreService(db *gorm.DB) *GenreService {
	return &GenreService{db: db}
}

// GetAllGenres retrieves all Genre records from the database
func (s *GenreService) GetAllGenres() ([]models.GenreModel, error) {
	var genres []models.GenreModel
	result := s.db.Order("name ASC").Find(&genres)
	return genres, result.Error
}

// CreateGenre creates a new Genre record in the database
func (s *GenreService) CreateGenre(genre *models.GenreModel) (*models.GenreModel, error) {
	if err := s.db.Create(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}

// DeleteGenre deletes a Genre record by its ID, detaching it from books first
func (s *GenreService) DeleteGenre(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var genre models.GenreModel
		if err := tx.First(&genre, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&genre).Association("Books").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.GenreModel{}, id).Error
	})
}
