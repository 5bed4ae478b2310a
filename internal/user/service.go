package user

import (
	"errors"

	"github.com/guessdle/guessdle/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(user User) (string, error) {
	userRetrieved, err := u.repo.CreateUser(user.Username, user.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(user User) (string, error) {
	userRetrieved, err := u.repo.ValidateUser(user.Username, user.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetUser(id uint) (*User, error) {
	usr, err := u.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}
	return usr, nil
}
