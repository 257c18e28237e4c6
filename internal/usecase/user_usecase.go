package usecase

import (
	"context"

	"manna/internal/domain/entity"
)

// RegisterInput represents the data needed to sign up with e-mail and password
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// UserUsecase defines account registration
type UserUsecase interface {
	// Register creates the identity account and its profile document
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
}
