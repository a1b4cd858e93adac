package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a materialized plan instance: a copy of a PlanTemplate bound
// to one client for one day of the week. Instances are created once per
// assign action and never mutated in place; reassignment is a new Assignment.
//
// TemplateID is nil on legacy instances created before templates carried ids;
// those are matched by PlanName instead.
type Assignment struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TemplateID  *primitive.ObjectID `bson:"templateId,omitempty" json:"templateId,omitempty"`
	PlanName    string              `bson:"planName" json:"planName"`
	ClientID    primitive.ObjectID  `bson:"clientId" json:"clientId"`
	TrainerID   primitive.ObjectID  `bson:"trainerId" json:"trainerId"` // Denormalized for trainer queries
	SelectedDay string              `bson:"selectedDay,omitempty" json:"selectedDay,omitempty"`
	Entries     []PlanEntry         `bson:"entries" json:"entries"`
	AssignedAt  time.Time           `bson:"assignedAt" json:"assignedAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
