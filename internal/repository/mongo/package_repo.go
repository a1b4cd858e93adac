package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const packageCollectionName = "packages"

// mongoPackageRepository implements repository.PackageRepository
type mongoPackageRepository struct {
	collection *mongo.Collection
}

// NewMongoPackageRepository creates a new Package repository backed by MongoDB.
func NewMongoPackageRepository(db *mongo.Database) repository.PackageRepository {
	return &mongoPackageRepository{
		collection: db.Collection(packageCollectionName),
	}
}

// Create inserts a new package into the database.
func (r *mongoPackageRepository) Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error) {
	if pkg.Name == "" {
		return primitive.NilObjectID, errors.New("package name is required")
	}

	pkg.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted package ID")
	}
	return insertedID, nil
}

// GetByID retrieves a package by its ID.
func (r *mongoPackageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	var pkg domain.Package
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// GetAll retrieves all packages sorted by name.
func (r *mongoPackageRepository) GetAll(ctx context.Context) ([]domain.Package, error) {
	var packages []domain.Package
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return packages, nil
}

// EnsurePackageIndexes creates necessary indexes for the packages collection.
func EnsurePackageIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
