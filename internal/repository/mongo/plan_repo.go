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

const planTemplateCollectionName = "plan_templates"

// mongoPlanTemplateRepository implements repository.PlanTemplateRepository
type mongoPlanTemplateRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanTemplateRepository creates a new PlanTemplate repository backed by MongoDB.
func NewMongoPlanTemplateRepository(db *mongo.Database) repository.PlanTemplateRepository {
	return &mongoPlanTemplateRepository{
		collection: db.Collection(planTemplateCollectionName),
	}
}

// Create inserts a new plan template into the database.
func (r *mongoPlanTemplateRepository) Create(ctx context.Context, tpl *domain.PlanTemplate) (primitive.ObjectID, error) {
	if tpl.Name == "" || tpl.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("template name and trainerId are required")
	}

	tpl.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	tpl.IsTemplate = true
	if tpl.Entries == nil {
		tpl.Entries = []domain.PlanEntry{}
	}

	result, err := r.collection.InsertOne(ctx, tpl)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted template ID")
	}
	return insertedID, nil
}

// GetByID retrieves a plan template by its ID.
func (r *mongoPlanTemplateRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error) {
	var tpl domain.PlanTemplate
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&tpl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &tpl, nil
}

// GetTemplates retrieves all plan templates, newest first.
func (r *mongoPlanTemplateRepository) GetTemplates(ctx context.Context) ([]domain.PlanTemplate, error) {
	var templates []domain.PlanTemplate
	filter := bson.M{"isTemplate": true}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}

// AppendWeekEntries pushes generated entries onto the template in one
// guarded update. The filter rejects the write when any entry for the week
// already exists, so a repeated generation call cannot duplicate a week
// even across processes.
func (r *mongoPlanTemplateRepository) AppendWeekEntries(ctx context.Context, id primitive.ObjectID, weekNumber int, entries []domain.PlanEntry) error {
	if len(entries) == 0 {
		return errors.New("no entries to append")
	}

	filter := bson.M{
		"_id":                id,
		"entries.weekNumber": bson.M{"$ne": weekNumber},
	}
	update := bson.M{
		"$push": bson.M{"entries": bson.M{"$each": entries}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrConflict
	}
	return nil
}

// EnsurePlanTemplateIndexes creates necessary indexes for the plan_templates collection.
func EnsurePlanTemplateIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "isTemplate", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
