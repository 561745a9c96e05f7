// Package usecase defines the application's business operations as interfaces,
// decoupling delivery layers from the implementations in impl.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput carries the fields required to register a customer.
type CreateUserInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateUserInput carries the mutable fields of a customer account.
type UpdateUserInput struct {
	Name  string
	Email string
	Phone string
}

// UserUsecase defines the interface for customer account management use cases
type UserUsecase interface {
	// CreateUser registers a new customer account
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetUser retrieves a customer by ID
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves every registered customer
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser modifies an existing customer account
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a customer account and its owned data
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
