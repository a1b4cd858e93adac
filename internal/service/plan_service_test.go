package service

import (
	"context"
	"testing"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPlanFixture(t *testing.T) (PlanService, *fakePlanRepo, *fakeAssignmentRepo, *fakeClientRepo) {
	t.Helper()
	planRepo := newFakePlanRepo()
	assignmentRepo := &fakeAssignmentRepo{}
	clientRepo := &fakeClientRepo{}
	return NewPlanService(planRepo, assignmentRepo, clientRepo), planRepo, assignmentRepo, clientRepo
}

func createTemplate(t *testing.T, svc PlanService, name, category string, calories int) *domain.PlanTemplate {
	t.Helper()
	tpl, err := svc.CreateTemplate(context.Background(), primitive.NewObjectID(), CreateTemplateInput{
		Name:           name,
		Category:       category,
		TargetCalories: calories,
	})
	require.NoError(t, err)
	return tpl
}

func TestGenerateWeek_UsesTemplateTargets(t *testing.T) {
	svc, _, _, _ := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	entries, err := svc.GenerateWeek(context.Background(), tpl.ID, GenerateWeekInput{WeekNumber: 1})
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.Equal(t, 360, e.Calories) // round(1800/5)
		assert.Equal(t, 28, e.Fats)      // round(360 * 70% / 9)
	}
}

func TestGenerateWeek_SecondWeekAppends(t *testing.T) {
	svc, planRepo, _, _ := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	_, err := svc.GenerateWeek(context.Background(), tpl.ID, GenerateWeekInput{WeekNumber: 1})
	require.NoError(t, err)
	_, err = svc.GenerateWeek(context.Background(), tpl.ID, GenerateWeekInput{WeekNumber: 2})
	require.NoError(t, err)

	stored, err := planRepo.GetByID(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Entries, 10)
	assert.True(t, stored.HasWeek(1))
	assert.True(t, stored.HasWeek(2))
}

func TestGenerateWeek_DuplicateWeekRejectedWithoutMutation(t *testing.T) {
	svc, planRepo, _, _ := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	_, err := svc.GenerateWeek(context.Background(), tpl.ID, GenerateWeekInput{WeekNumber: 1})
	require.NoError(t, err)

	_, err = svc.GenerateWeek(context.Background(), tpl.ID, GenerateWeekInput{WeekNumber: 1})
	assert.ErrorIs(t, err, ErrWeekExists)

	stored, err := planRepo.GetByID(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Entries, 5)
}

func TestGenerateWeek_UnknownTemplate(t *testing.T) {
	svc, _, _, _ := newPlanFixture(t)
	_, err := svc.GenerateWeek(context.Background(), primitive.NewObjectID(), GenerateWeekInput{WeekNumber: 1})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestAssignTemplate_SkipsAlreadyAssignedClient(t *testing.T) {
	svc, _, _, clientRepo := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	anaID := addClient(t, clientRepo, "ana", nil)
	benID := addClient(t, clientRepo, "ben", nil)

	first, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID}, "Monday")
	require.NoError(t, err)
	assert.Equal(t, []string{anaID}, first.AssignedClientIDs)
	assert.Empty(t, first.AlreadyAssignedNames)

	second, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID, benID}, "Monday")
	require.NoError(t, err)
	assert.Equal(t, []string{benID}, second.AssignedClientIDs)
	assert.Equal(t, []string{"ana"}, second.AlreadyAssignedNames)
}

func TestAssignTemplate_RetryYieldsNothingNew(t *testing.T) {
	svc, _, assignmentRepo, clientRepo := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	anaID := addClient(t, clientRepo, "ana", nil)
	benID := addClient(t, clientRepo, "ben", nil)
	clientIDs := []string{anaID, benID}

	first, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, clientIDs, "Tuesday")
	require.NoError(t, err)
	assert.Len(t, first.AssignedClientIDs, 2)

	retry, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, clientIDs, "Tuesday")
	require.NoError(t, err)
	assert.Empty(t, retry.AssignedClientIDs)
	assert.ElementsMatch(t, []string{"ana", "ben"}, retry.AlreadyAssignedNames)

	instances, err := assignmentRepo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, instances, 2)
}

func TestAssignTemplate_SameClientFreeOnAnotherDay(t *testing.T) {
	svc, _, _, clientRepo := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)
	anaID := addClient(t, clientRepo, "ana", nil)

	_, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID}, "Monday")
	require.NoError(t, err)

	wednesday, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID}, "Wednesday")
	require.NoError(t, err)
	assert.Equal(t, []string{anaID}, wednesday.AssignedClientIDs)
}

func TestAssignTemplate_CopiesEntriesStampedWithDay(t *testing.T) {
	svc, _, assignmentRepo, clientRepo := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	entries, err := svc.GenerateWeek(context.Background(), tpl.ID, GenerateWeekInput{WeekNumber: 1})
	require.NoError(t, err)

	anaID := addClient(t, clientRepo, "ana", nil)
	_, err = svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID}, "Friday")
	require.NoError(t, err)

	instances, err := assignmentRepo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 1)

	inst := instances[0]
	assert.Equal(t, "Keto Plan", inst.PlanName)
	assert.Equal(t, "Friday", inst.SelectedDay)
	require.Len(t, inst.Entries, 5)
	for i, e := range inst.Entries {
		assert.Equal(t, "Friday", e.Day)
		assert.NotEqual(t, entries[i].ID, e.ID, "copies must carry fresh entry ids")
		assert.Equal(t, entries[i].Calories, e.Calories)
	}
}

func TestGetClientAssignments_ReturnsOnlyThatClient(t *testing.T) {
	svc, _, _, clientRepo := newPlanFixture(t)
	tpl := createTemplate(t, svc, "Keto Plan", "Ketogenic", 1800)

	anaID := addClient(t, clientRepo, "ana", nil)
	benID := addClient(t, clientRepo, "ben", nil)

	_, err := svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID, benID}, "Monday")
	require.NoError(t, err)
	_, err = svc.AssignTemplate(context.Background(), primitive.NewObjectID(), tpl.ID, []string{anaID}, "Friday")
	require.NoError(t, err)

	anaOID, err := primitive.ObjectIDFromHex(anaID)
	require.NoError(t, err)
	assignments, err := svc.GetClientAssignments(context.Background(), anaOID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	for _, a := range assignments {
		assert.Equal(t, anaOID, a.ClientID)
	}

	_, err = svc.GetClientAssignments(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestPreviewMacros_PureComputation(t *testing.T) {
	svc, _, _, _ := newPlanFixture(t)
	m := svc.PreviewMacros(2000, "High Protein")
	assert.Equal(t, 200, m.Protein) // 2000 * 40% / 4
	assert.Equal(t, 150, m.Carbs)   // 2000 * 30% / 4
	assert.Equal(t, 67, m.Fats)     // 2000 * 30% / 9
}
