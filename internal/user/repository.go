package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(username, password string) (*User, error)
	ValidateUser(username, password string) (*User, error)
	GetUser(id uint) (*User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(username, password string) (*User, error) {
	var exists User
	result := r.db.Where("username = ?", username).First(&exists)
	if result.Error == nil {
		return nil, errors.New("user already exists")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Password: string(hashed),
	}

	if err := r.db.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormUserRepository) ValidateUser(username, password string) (*User, error) {
	var u User
	result := r.db.Where("username = ?", username).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *GormUserRepository) GetUser(id uint) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &u, nil
}
