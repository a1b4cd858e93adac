package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanType distinguishes diet templates from workout templates.
type PlanType string

const (
	PlanDiet    PlanType = "diet"
	PlanWorkout PlanType = "workout"
)

// PlanEntry is one week-scoped meal or exercise slot embedded in a template
// or assignment. Entries are embedded documents, so they carry their own
// generated string ID rather than an ObjectID.
type PlanEntry struct {
	ID         string `bson:"id" json:"id"`
	WeekNumber int    `bson:"weekNumber" json:"weekNumber"`
	Day        string `bson:"day,omitempty" json:"day,omitempty"` // Set on assignment copies, empty on template entries
	TimeSlot   string `bson:"timeSlot" json:"timeSlot"`           // e.g. "7:00 AM"
	Label      string `bson:"label" json:"label"`                 // e.g. "Breakfast", "Snack"
	Calories   int    `bson:"calories" json:"calories"`
	Protein    int    `bson:"protein" json:"protein"` // grams
	Carbs      int    `bson:"carbs" json:"carbs"`     // grams
	Fats       int    `bson:"fats" json:"fats"`       // grams
}

// PlanTemplate is a reusable diet or workout definition authored by a trainer
// and not yet bound to a client. Category names a macro distribution profile
// ("Balanced", "Ketogenic", ...). Within one template no two entries may be
// generated for the same week number.
type PlanTemplate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID      primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Name           string             `bson:"name" json:"name"`
	Type           PlanType           `bson:"type" json:"type"`
	Category       string             `bson:"category" json:"category"`
	TargetCalories int                `bson:"targetCalories" json:"targetCalories"` // Weekly total
	TargetProtein  int                `bson:"targetProtein,omitempty" json:"targetProtein,omitempty"`
	TargetCarbs    int                `bson:"targetCarbs,omitempty" json:"targetCarbs,omitempty"`
	TargetFats     int                `bson:"targetFats,omitempty" json:"targetFats,omitempty"`
	IsTemplate     bool               `bson:"isTemplate" json:"isTemplate"`
	SelectedDay    string             `bson:"selectedDay,omitempty" json:"selectedDay,omitempty"`
	Entries        []PlanEntry        `bson:"entries" json:"entries"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasWeek reports whether any entry already carries the given week number.
func (t *PlanTemplate) HasWeek(week int) bool {
	for _, e := range t.Entries {
		if e.WeekNumber == week {
			return true
		}
	}
	return false
}
