package service

import (
	"context"
	"errors"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrDuplicateEmail   = errors.New("a client with this email already exists")
	ErrDuplicatePackage = errors.New("a package with this name already exists")
	ErrUnknownPackageID = errors.New("referenced package does not exist")
)

// CreateClientInput carries the fields an admin supplies when provisioning a client.
type CreateClientInput struct {
	Name      string
	Email     string
	Phone     string
	PackageID string
	Allergies []string
}

// --- Service Interface ---
type CatalogService interface {
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	GetClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	CreatePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetPackages(ctx context.Context) ([]domain.Package, error)
}

// --- Service Implementation ---

// catalogService implements the CatalogService interface.
type catalogService struct {
	clientRepo  repository.ClientRepository
	packageRepo repository.PackageRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(clientRepo repository.ClientRepository, packageRepo repository.PackageRepository) CatalogService {
	return &catalogService{
		clientRepo:  clientRepo,
		packageRepo: packageRepo,
	}
}

// CreateClient provisions a new client, validating the package reference once
// at this boundary so downstream logic never re-checks it.
func (s *catalogService) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if input.Name == "" || input.Email == "" {
		return nil, errors.New("client name and email are required")
	}

	client := &domain.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Allergies: input.Allergies,
	}

	if input.PackageID != "" {
		pkgID, err := primitive.ObjectIDFromHex(input.PackageID)
		if err != nil {
			return nil, ErrUnknownPackageID
		}
		if _, err := s.packageRepo.GetByID(ctx, pkgID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownPackageID
			}
			return nil, err
		}
		client.PackageID = &pkgID
	}

	clientID, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	client.ID = clientID
	return client, nil
}

// GetClients returns the full roster.
func (s *catalogService) GetClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.GetAll(ctx)
}

// GetClient returns one client.
func (s *catalogService) GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// CreatePackage adds a subscription tier to the catalog.
func (s *catalogService) CreatePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if pkg == nil || pkg.Name == "" {
		return nil, errors.New("package name is required")
	}

	pkgID, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicatePackage
		}
		return nil, err
	}
	pkg.ID = pkgID
	return pkg, nil
}

// GetPackages returns the package catalog.
func (s *catalogService) GetPackages(ctx context.Context) ([]domain.Package, error) {
	return s.packageRepo.GetAll(ctx)
}
