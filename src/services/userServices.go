package services

import (
	"errors"
	"time"

	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	result := s.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// GetUserByID retrieves a User record by its ID
func (s *UserService) GetUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail resolves a user by email, the identity loans are issued to
func (s *UserService) GetUserByEmail(email string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newDomainError(ErrUnknownUser, "user", "no user with email %s", email)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new User record in the database
func (s *UserService) CreateUser(user *models.UserModel) (*models.UserModel, error) {
	// Hash the password before saving
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	result := s.db.Create(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

// DeleteUser deletes a User record by ID. A user still holding an active loan
// cannot be deleted; their reservations are soft-cancelled with them.
func (s *UserService) DeleteUser(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.UserModel
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		var activeLoans int64
		if err := tx.Model(&models.LoanModel{}).
			Where("user_id = ? AND is_active = ?", id, true).
			Count(&activeLoans).Error; err != nil {
			return err
		}
		if activeLoans > 0 {
			return newDomainError(ErrAlreadyLoaned, "user", "user %d still holds %d active loans", id, activeLoans)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.ReservationModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.UserModel{}, id).Error
	})
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(email, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.New("invalid email or password")
		}
		return "", result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid email or password")
	}

	claims := jwt.MapClaims{
		"id":  user.Id,
		"exp": time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
