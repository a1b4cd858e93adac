package repository

import (
	"context"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("conflict")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ClientRepository defines the interface for interacting with client data.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
}

// PackageRepository defines the interface for interacting with package data.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error)
	GetAll(ctx context.Context) ([]domain.Package, error)
}

// SessionRepository defines the interface for interacting with session data.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Session, error)
	GetAll(ctx context.Context) ([]domain.Session, error)
	// AppendClient adds a client to the session roster in a single guarded
	// write: it fails with ErrConflict if the client is already on the
	// roster or the roster has reached maxCapacity. This is the true
	// atomicity boundary for the capacity invariant.
	AppendClient(ctx context.Context, sessionID, clientID primitive.ObjectID, maxCapacity int) error
}

// PlanTemplateRepository defines the interface for interacting with plan templates.
type PlanTemplateRepository interface {
	Create(ctx context.Context, tpl *domain.PlanTemplate) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error)
	GetTemplates(ctx context.Context) ([]domain.PlanTemplate, error)
	// AppendWeekEntries appends generated entries in a single guarded
	// write that fails with ErrConflict if the template already holds any
	// entry for weekNumber.
	AppendWeekEntries(ctx context.Context, id primitive.ObjectID, weekNumber int, entries []domain.PlanEntry) error
}

// AssignmentRepository defines the interface for interacting with plan instances.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.Assignment, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error)
}
