package services

import (
	"context"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
)

// UserSvcFacade defines user administration operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername also returns the password hash for credential checks.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)
	DeactivateUser(ctx context.Context, userID string, requestingUserID string) error
}
