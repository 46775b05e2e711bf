package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/dtos"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type ImportResult struct {
	Imported int
	Errors   []string
}

type BookService struct {
	db       *gorm.DB
	capacity *CapacityService
	cache    map[string]*CacheEntry
	mutex    sync.RWMutex
}

// BookFilters are the raw-text list filters accepted by the books index
type BookFilters struct {
	Title      string
	Author     string
	ISBN       string
	BookcaseID *int
}

// NewBookService creates a new instance of BookService
func NewBookService(db *gorm.DB, capacity *CapacityService) *BookService {
	service := &BookService{
		db:       db,
		capacity: capacity,
		cache:    make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *BookService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *BookService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *BookService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *BookService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// InvalidateBookCache drops the cached entries for one book and the lists.
// The loan service calls it whenever circulation changes availability.
func (s *BookService) InvalidateBookCache(bookID int) {
	s.invalidateCache(fmt.Sprintf("book_%d", bookID))
	s.invalidateCache("all_books")
	s.invalidateCache("books_bookcase_")
}

// GetAllBooks retrieves books page by page with optional filters. Unfiltered
// and bookcase-scoped pages are cached briefly, text searches are not.
func (s *BookService) GetAllBooks(page, perPage int, filters BookFilters) ([]models.BookModel, dtos.PaginationMeta, error) {
	type cachedPage struct {
		Books []models.BookModel
		Meta  dtos.PaginationMeta
	}

	textSearch := filters.Title != "" || filters.Author != "" || filters.ISBN != ""

	var cacheKey string
	if !textSearch {
		if filters.BookcaseID != nil {
			cacheKey = fmt.Sprintf("books_bookcase_%d_p%d_n%d", *filters.BookcaseID, page, perPage)
		} else {
			cacheKey = fmt.Sprintf("all_books_p%d_n%d", page, perPage)
		}
		if cached, found := s.getCache(cacheKey); found {
			entry := cached.(cachedPage)
			return entry.Books, entry.Meta, nil
		}
	}

	query := s.db.Model(&models.BookModel{}).
		Preload("Genres").
		Preload("Bookcase").
		Preload("Bookcase.Zone").
		Order("created_at DESC")

	if filters.Title != "" {
		query = query.Where("title LIKE ?", "%"+filters.Title+"%")
	}
	if filters.Author != "" {
		query = query.Where("author LIKE ?", "%"+filters.Author+"%")
	}
	if filters.ISBN != "" {
		query = query.Where("isbn LIKE ?", "%"+filters.ISBN+"%")
	}
	if filters.BookcaseID != nil {
		query = query.Where("bookcase_id = ?", *filters.BookcaseID)
	}

	var books []models.BookModel
	meta, err := paginate(query, page, perPage, &books)
	if err != nil {
		return nil, meta, err
	}

	if cacheKey != "" {
		s.setCache(cacheKey, cachedPage{Books: books, Meta: meta}, 5*time.Minute)
	}

	return books, meta, nil
}

// GetBookByID retrieves a Book record by its ID
func (s *BookService) GetBookByID(id int) (*models.BookModel, error) {
	cacheKey := fmt.Sprintf("book_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		book := cached.(models.BookModel)
		return &book, nil
	}

	var book models.BookModel
	err := s.db.Preload("Genres").
		Preload("Bookcase").
		Preload("Bookcase.Zone").
		Preload("Bookcase.Zone.Floor").
		First(&book, id).Error
	if err != nil {
		return nil, err
	}

	s.setCache(cacheKey, book, 10*time.Minute)

	return &book, nil
}

// GetBookByISBN resolves a book by its unique ISBN
func (s *BookService) GetBookByISBN(isbn string) (*models.BookModel, error) {
	var book models.BookModel
	if err := s.db.Where("isbn = ?", isbn).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newDomainError(ErrUnknownBook, "book", "no book with isbn %s", isbn)
		}
		return nil, err
	}
	return &book, nil
}

// CreateBook inserts a book into its bookcase. The admission check and the
// insert run as one serialized check-then-commit against the bookcase.
// genreNames are resolved to genre rows, creating missing ones.
func (s *BookService) CreateBook(book *models.BookModel, genreNames []string) (*models.BookModel, error) {
	unlock := s.capacity.LockParent(nodeBookcase, book.BookcaseId)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bookcase models.BookcaseModel
		if err := tx.First(&bookcase, book.BookcaseId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrInvalidParent, "bookcase", "bookcase %d does not exist", book.BookcaseId)
			}
			return err
		}

		if err := s.capacity.CheckAdmission(tx, &models.BookModel{}, "bookcase_id", bookcase.ID, bookcase.Capacity, "bookcase", 0); err != nil {
			return err
		}

		genres, err := resolveGenres(tx, genreNames)
		if err != nil {
			return err
		}
		book.Genres = genres

		if err := tx.Create(book).Error; err != nil {
			return err
		}

		return s.capacity.VerifyPlacement(tx, &models.BookModel{}, "bookcase_id", bookcase.ID, bookcase.Capacity, "bookcase")
	})

	if err != nil {
		return nil, err
	}

	s.invalidateCache("all_books")
	s.invalidateCache("books_bookcase_")

	return book, nil
}

// UpdateBook updates book metadata and genres. Changing the bookcase goes
// through MoveBook so the placement stays atomic.
func (s *BookService) UpdateBook(id int, updated *models.BookModel, genreNames []string) (*models.BookModel, error) {
	var book models.BookModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&book).Updates(map[string]interface{}{
			"title":  updated.Title,
			"author": updated.Author,
			"editor": updated.Editor,
			"isbn":   updated.ISBN,
			"length": updated.Length,
		}).Error; err != nil {
			return err
		}

		if genreNames != nil {
			genres, err := resolveGenres(tx, genreNames)
			if err != nil {
				return err
			}
			if err := tx.Model(&book).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.InvalidateBookCache(id)

	return s.GetBookByID(id)
}

// MoveBook re-places an existing book into another bookcase: one atomic
// check-then-commit against the target, removing it from the prior parent's
// count in the same operation.
func (s *BookService) MoveBook(bookID, toBookcaseID int) (*models.BookModel, error) {
	unlock := s.capacity.LockParent(nodeBookcase, toBookcaseID)
	defer unlock()

	var book models.BookModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrUnknownBook, "book", "book %d does not exist", bookID)
			}
			return err
		}

		var bookcase models.BookcaseModel
		if err := tx.First(&bookcase, toBookcaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newDomainError(ErrInvalidParent, "bookcase", "bookcase %d does not exist", toBookcaseID)
			}
			return err
		}

		if err := s.capacity.CheckAdmission(tx, &models.BookModel{}, "bookcase_id", bookcase.ID, bookcase.Capacity, "bookcase", book.ID); err != nil {
			return err
		}

		if err := tx.Model(&book).Update("bookcase_id", toBookcaseID).Error; err != nil {
			return err
		}

		return s.capacity.VerifyPlacement(tx, &models.BookModel{}, "bookcase_id", bookcase.ID, bookcase.Capacity, "bookcase")
	})

	if err != nil {
		return nil, err
	}

	s.InvalidateBookCache(bookID)

	return &book, nil
}

// DeleteBook soft-deletes a book. A book with an active loan cannot be
// deleted; outstanding reservations are soft-cancelled in the same
// transaction so the timeline keeps their history.
func (s *BookService) DeleteBook(id int) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var book models.BookModel
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		var activeLoans int64
		if err := tx.Model(&models.LoanModel{}).
			Where("book_id = ? AND is_active = ?", id, true).
			Count(&activeLoans).Error; err != nil {
			return err
		}
		if activeLoans > 0 {
			return newDomainError(ErrAlreadyLoaned, "book", "book %d is still on loan", id)
		}

		if err := tx.Where("book_id = ?", id).Delete(&models.ReservationModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.BookModel{}, id).Error
	})

	if err != nil {
		return err
	}

	s.InvalidateBookCache(id)
	return nil
}

// resolveGenres maps genre names to rows, creating the missing ones
func resolveGenres(tx *gorm.DB, names []string) ([]models.GenreModel, error) {
	genres := make([]models.GenreModel, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var genre models.GenreModel
		err := tx.Where("name = ?", name).First(&genre).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			genre = models.GenreModel{Name: name}
			if err := tx.Create(&genre).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	return genres, nil
}

// ImportBooksFromExcel bulk-loads books from a spreadsheet. Expected columns:
// title, author, editor, isbn, length, bookcase id, genres (comma separated).
// The first row is the header. Row failures are collected, not fatal.
func (s *BookService) ImportBooksFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// header row, empty rows
		if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		book := models.BookModel{
			Title:  cell(0),
			Author: cell(1),
			Editor: cell(2),
			ISBN:   cell(3),
		}

		if l := cell(4); l != "" {
			length, err := strconv.Atoi(l)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid length %q", i+1, l))
				continue
			}
			book.Length = length
		}

		bookcaseID, err := strconv.Atoi(cell(5))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid bookcase id %q", i+1, cell(5)))
			continue
		}
		book.BookcaseId = bookcaseID

		var genreNames []string
		if g := cell(6); g != "" {
			genreNames = strings.Split(g, ",")
		}

		if _, err := s.CreateBook(&book, genreNames); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		result.Imported++
	}

	return result, nil
}
