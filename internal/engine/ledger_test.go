package engine

import (
	"testing"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func instance(templateID *primitive.ObjectID, planName string, clientID primitive.ObjectID, selectedDay, firstEntryDay string) domain.Assignment {
	a := domain.Assignment{
		TemplateID:  templateID,
		PlanName:    planName,
		ClientID:    clientID,
		SelectedDay: selectedDay,
	}
	if firstEntryDay != "" {
		a.Entries = []domain.PlanEntry{{ID: "e1", WeekNumber: 1, Day: firstEntryDay}}
	}
	return a
}

func TestResolveDay_EntryDayWinsOverSelectedDay(t *testing.T) {
	a := instance(nil, "Plan", primitive.NewObjectID(), "Tuesday", "Friday")
	assert.Equal(t, "Friday", ResolveDay(a))
}

func TestResolveDay_FallsBackToSelectedDayThenMonday(t *testing.T) {
	a := instance(nil, "Plan", primitive.NewObjectID(), "Tuesday", "")
	assert.Equal(t, "Tuesday", ResolveDay(a))

	b := instance(nil, "Plan", primitive.NewObjectID(), "", "")
	assert.Equal(t, "Monday", ResolveDay(b))
}

func TestAssignedClientSet_PrimaryTemplateIDMatch(t *testing.T) {
	t1 := primitive.NewObjectID()
	t2 := primitive.NewObjectID()
	clientA := primitive.NewObjectID()
	clientB := primitive.NewObjectID()

	instances := []domain.Assignment{
		instance(&t1, "Keto Plan", clientA, "Monday", ""),
		instance(&t2, "Keto Plan", clientB, "Monday", ""),  // different template
		instance(&t1, "Keto Plan", clientB, "Tuesday", ""), // different day
	}

	set := AssignedClientSet(instances, t1.Hex(), "Keto Plan", "Monday")
	assert.True(t, set[clientA.Hex()])
	assert.False(t, set[clientB.Hex()])
	assert.Len(t, set, 1)
}

func TestAssignedClientSet_LegacyNameFallback(t *testing.T) {
	t1 := primitive.NewObjectID()
	clientA := primitive.NewObjectID()
	clientB := primitive.NewObjectID()

	instances := []domain.Assignment{
		instance(nil, "Keto Plan", clientA, "Monday", ""),
		instance(nil, "Other Plan", clientB, "Monday", ""),
	}

	set := AssignedClientSet(instances, t1.Hex(), "Keto Plan", "Monday")
	assert.True(t, set[clientA.Hex()])
	assert.False(t, set[clientB.Hex()])
}

func TestAssignedClientSet_EntryDayOverridesPlanDay(t *testing.T) {
	t1 := primitive.NewObjectID()
	clientA := primitive.NewObjectID()

	// Plan-level day says Tuesday, but the first entry carries Monday.
	instances := []domain.Assignment{
		instance(&t1, "Plan", clientA, "Tuesday", "Monday"),
	}

	assert.True(t, AssignedClientSet(instances, t1.Hex(), "Plan", "Monday")[clientA.Hex()])
	assert.Empty(t, AssignedClientSet(instances, t1.Hex(), "Plan", "Tuesday"))
}

func TestAssignedClientSet_MissingDayDefaultsToMonday(t *testing.T) {
	t1 := primitive.NewObjectID()
	clientA := primitive.NewObjectID()

	instances := []domain.Assignment{
		instance(&t1, "Plan", clientA, "", ""),
	}

	assert.True(t, AssignedClientSet(instances, t1.Hex(), "Plan", "Monday")[clientA.Hex()])
	assert.True(t, AssignedClientSet(instances, t1.Hex(), "Plan", "")[clientA.Hex()])
}

func TestAssignedClientSet_UnionNotAdditive(t *testing.T) {
	t1 := primitive.NewObjectID()
	clientA := primitive.NewObjectID()

	// Same client matched by both the id key and the name key still
	// yields a single set member.
	instances := []domain.Assignment{
		instance(&t1, "Keto Plan", clientA, "Monday", ""),
		instance(nil, "Keto Plan", clientA, "Monday", ""),
	}

	set := AssignedClientSet(instances, t1.Hex(), "Keto Plan", "Monday")
	assert.Len(t, set, 1)
}
