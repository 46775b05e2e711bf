package services

import (
	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"gorm.io/gorm"
)

const defaultPerPage = 10

// paginate runs the count plus the page window for a list query and fills out.
func paginate(query *gorm.DB, page, perPage int, out interface{}) (dtos.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return dtos.PaginationMeta{}, err
	}

	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(out).Error; err != nil {
		return dtos.PaginationMeta{}, err
	}

	return dtos.NewPaginationMeta(page, perPage, total), nil
}
