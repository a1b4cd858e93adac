package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is the subscription tier a client is enrolled in, e.g. "Fit Plus",
// "Pro Transformation", "Elite Athlete" or "Fit Basics". Static reference
// data: created by an admin, rarely mutated afterwards.
type Package struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                    string             `bson:"name" json:"name"`
	DietPlanAccess          bool               `bson:"dietPlanAccess" json:"dietPlanAccess"`
	LiveGroupTrainingAccess bool               `bson:"liveGroupTrainingAccess" json:"liveGroupTrainingAccess"`
	LiveSessionsPerMonth    int                `bson:"liveSessionsPerMonth" json:"liveSessionsPerMonth"`
	Price                   float64            `bson:"price" json:"price"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt" json:"updatedAt"`
}
