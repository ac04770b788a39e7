package auth

import (
	"errors"

	"gorm.io/gorm"
)

// AuthRepository defines methods to interact with scorer accounts.
type AuthRepository interface {
	CreateUser(user *User) error
	GetUserByIdentifier(identifier string) (*User, error)
	GetUserByID(id uint) (*User, error)
}

// GormAuthRepository implements AuthRepository using GORM.
type GormAuthRepository struct {
	db *gorm.DB
}

func NewGormAuthRepository(db *gorm.DB) *GormAuthRepository {
	return &GormAuthRepository{db: db}
}

func (r *GormAuthRepository) CreateUser(user *User) error {
	return r.db.Create(user).Error
}

// GetUserByIdentifier looks a user up by email or username.
func (r *GormAuthRepository) GetUserByIdentifier(identifier string) (*User, error) {
	var user User
	result := r.db.Where("email = ?", identifier).Or("username = ?", identifier).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *GormAuthRepository) GetUserByID(id uint) (*User, error) {
	var user User
	result := r.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}
