package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/engine"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTemplateNotFound = errors.New("plan template not found")
	ErrWeekExists       = errors.New("week already exists for this template")
	ErrMissingCalories  = errors.New("target calories are required")
)

// CreateTemplateInput carries the fields a trainer supplies for a new template.
type CreateTemplateInput struct {
	Name           string
	Type           domain.PlanType
	Category       string
	TargetCalories int
	TargetProtein  int
	TargetCarbs    int
	TargetFats     int
	SelectedDay    string
}

// GenerateWeekInput describes one week-generation request. Zero values fall
// back to the template's own targets; explicit macro totals override the
// category-derived split.
type GenerateWeekInput struct {
	WeekNumber     int
	TargetCalories int
	Category       string
	Protein        *int
	Carbs          *int
	Fats           *int
}

// AssignTemplateResult reports which clients received a new plan instance
// and, by name, which were already assigned for that day.
type AssignTemplateResult struct {
	AssignedClientIDs    []string `json:"assignedClientIds"`
	AlreadyAssignedNames []string `json:"alreadyAssignedNames"`
}

// --- Service Interface ---
type PlanService interface {
	CreateTemplate(ctx context.Context, trainerID primitive.ObjectID, input CreateTemplateInput) (*domain.PlanTemplate, error)
	GetTemplates(ctx context.Context) ([]domain.PlanTemplate, error)
	GetTemplate(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error)
	PreviewMacros(targetCalories int, category string) engine.Macros
	GenerateWeek(ctx context.Context, templateID primitive.ObjectID, input GenerateWeekInput) ([]domain.PlanEntry, error)
	AssignTemplate(ctx context.Context, trainerID, templateID primitive.ObjectID, clientIDs []string, day string) (*AssignTemplateResult, error)
	GetClientAssignments(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error)
}

// --- Service Implementation ---

// planService implements the PlanService interface.
type planService struct {
	planRepo       repository.PlanTemplateRepository
	assignmentRepo repository.AssignmentRepository
	clientRepo     repository.ClientRepository
	locks          *keyedLocks
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	planRepo repository.PlanTemplateRepository,
	assignmentRepo repository.AssignmentRepository,
	clientRepo repository.ClientRepository,
) PlanService {
	return &planService{
		planRepo:       planRepo,
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
		locks:          newKeyedLocks(),
	}
}

// CreateTemplate authors a new reusable plan template.
func (s *planService) CreateTemplate(ctx context.Context, trainerID primitive.ObjectID, input CreateTemplateInput) (*domain.PlanTemplate, error) {
	if trainerID == primitive.NilObjectID || input.Name == "" {
		return nil, errors.New("trainer ID and template name are required")
	}
	if input.TargetCalories <= 0 {
		return nil, ErrMissingCalories
	}
	planType := input.Type
	if planType == "" {
		planType = domain.PlanDiet
	}

	tpl := &domain.PlanTemplate{
		TrainerID:      trainerID,
		Name:           input.Name,
		Type:           planType,
		Category:       input.Category,
		TargetCalories: input.TargetCalories,
		TargetProtein:  input.TargetProtein,
		TargetCarbs:    input.TargetCarbs,
		TargetFats:     input.TargetFats,
		SelectedDay:    input.SelectedDay,
		IsTemplate:     true,
	}

	tplID, err := s.planRepo.Create(ctx, tpl)
	if err != nil {
		return nil, err
	}
	tpl.ID = tplID
	return tpl, nil
}

// GetTemplates returns all authored templates.
func (s *planService) GetTemplates(ctx context.Context) ([]domain.PlanTemplate, error) {
	return s.planRepo.GetTemplates(ctx)
}

// GetTemplate returns one template with its entries.
func (s *planService) GetTemplate(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error) {
	tpl, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}

// PreviewMacros computes gram targets for a calorie target and category
// without touching any template.
func (s *planService) PreviewMacros(targetCalories int, category string) engine.Macros {
	return engine.ComputeMacros(targetCalories, category)
}

// GenerateWeek expands the template's targets into the fixed 5-entry week
// and appends it. Read-decide-write is serialized per template, and the
// store-level append re-checks the week guard.
func (s *planService) GenerateWeek(ctx context.Context, templateID primitive.ObjectID, input GenerateWeekInput) ([]domain.PlanEntry, error) {
	if input.WeekNumber <= 0 {
		return nil, errors.New("week number must be positive")
	}

	lock := s.locks.get(templateID.Hex())
	lock.Lock()
	defer lock.Unlock()

	tpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	req := engine.WeekRequest{
		TargetCalories: input.TargetCalories,
		Category:       input.Category,
		WeekNumber:     input.WeekNumber,
		Protein:        input.Protein,
		Carbs:          input.Carbs,
		Fats:           input.Fats,
	}
	if req.TargetCalories <= 0 {
		req.TargetCalories = tpl.TargetCalories
	}
	if req.Category == "" {
		req.Category = tpl.Category
	}
	if req.TargetCalories <= 0 {
		return nil, ErrMissingCalories
	}
	// Template-level macro targets count as explicit weekly totals.
	if req.Protein == nil && tpl.TargetProtein > 0 {
		p := tpl.TargetProtein
		req.Protein = &p
	}
	if req.Carbs == nil && tpl.TargetCarbs > 0 {
		c := tpl.TargetCarbs
		req.Carbs = &c
	}
	if req.Fats == nil && tpl.TargetFats > 0 {
		f := tpl.TargetFats
		req.Fats = &f
	}

	entries, err := engine.GenerateWeek(req, tpl.Entries)
	if err != nil {
		if errors.Is(err, engine.ErrWeekExists) {
			return nil, ErrWeekExists
		}
		return nil, err
	}

	if err := s.planRepo.AppendWeekEntries(ctx, templateID, input.WeekNumber, entries); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrWeekExists
		}
		return nil, err
	}
	return entries, nil
}

// AssignTemplate binds the template to each client for the given day,
// skipping clients the ledger already holds for that (template, day).
// Safe to retry: a repeat with the same clients creates nothing new.
func (s *planService) AssignTemplate(ctx context.Context, trainerID, templateID primitive.ObjectID, clientIDs []string, day string) (*AssignTemplateResult, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		day = engine.DefaultDay
	}

	// Validate the whole batch up front so a malformed id cannot leave a
	// half-applied assignment behind.
	targets := make([]primitive.ObjectID, 0, len(clientIDs))
	for _, raw := range clientIDs {
		clientID, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
		if err != nil {
			return nil, ErrInvalidClientID
		}
		targets = append(targets, clientID)
	}

	lock := s.locks.get(templateID.Hex())
	lock.Lock()
	defer lock.Unlock()

	tpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	instances, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	already := engine.AssignedClientSet(instances, templateID.Hex(), tpl.Name, day)

	result := &AssignTemplateResult{
		AssignedClientIDs:    []string{},
		AlreadyAssignedNames: []string{},
	}
	seen := make(map[string]bool, len(targets))
	for _, clientID := range targets {
		hex := clientID.Hex()
		if seen[hex] {
			continue
		}
		seen[hex] = true

		if already[hex] {
			result.AlreadyAssignedNames = append(result.AlreadyAssignedNames, s.clientName(ctx, clientID, hex))
			continue
		}

		assignment := &domain.Assignment{
			TemplateID:  &templateID,
			PlanName:    tpl.Name,
			ClientID:    clientID,
			TrainerID:   trainerID,
			SelectedDay: day,
			Entries:     copyEntriesForDay(tpl.Entries, day),
		}
		if _, err := s.assignmentRepo.Create(ctx, assignment); err != nil {
			return nil, err
		}
		already[hex] = true
		result.AssignedClientIDs = append(result.AssignedClientIDs, hex)
	}
	return result, nil
}

// GetClientAssignments returns the plan instances held by one client.
func (s *planService) GetClientAssignments(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.assignmentRepo.GetByClientID(ctx, clientID)
}

// clientName resolves a client's display name, falling back to the id when
// the client record is gone.
func (s *planService) clientName(ctx context.Context, clientID primitive.ObjectID, fallback string) string {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return fallback
	}
	return client.Name
}

// copyEntriesForDay deep-copies template entries into an assignment,
// stamping each with the assignment day and a fresh id.
func copyEntriesForDay(entries []domain.PlanEntry, day string) []domain.PlanEntry {
	out := engine.CloneEntries(entries)
	if out == nil {
		out = []domain.PlanEntry{}
	}
	for i := range out {
		out[i].ID = uuid.NewString()
		out[i].Day = day
	}
	return out
}
