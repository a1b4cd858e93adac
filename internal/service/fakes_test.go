package service

import (
	"context"
	"sync"
	"time"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the guarded-write semantics of the
// mongo implementations (capacity-checked roster append, week-checked entry
// append) so service tests exercise the same atomicity boundaries.

type fakeClientRepo struct {
	mu      sync.Mutex
	clients []domain.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	client.ID = primitive.NewObjectID()
	client.IsActive = true
	f.clients = append(f.clients, *client)
	return client.ID, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.clients {
		if f.clients[i].ID == id {
			c := f.clients[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeClientRepo) GetAll(ctx context.Context) ([]domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Client, len(f.clients))
	copy(out, f.clients)
	return out, nil
}

type fakePackageRepo struct {
	mu       sync.Mutex
	packages []domain.Package
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pkg.ID = primitive.NewObjectID()
	f.packages = append(f.packages, *pkg)
	return pkg.ID, nil
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.packages {
		if f.packages[i].ID == id {
			p := f.packages[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePackageRepo) GetAll(ctx context.Context) ([]domain.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Package, len(f.packages))
	copy(out, f.packages)
	return out, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[primitive.ObjectID]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[primitive.ObjectID]*domain.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session.ID = primitive.NewObjectID()
	if session.MaxCapacity <= 0 {
		session.MaxCapacity = domain.DefaultMaxCapacity
	}
	if session.Status == "" {
		session.Status = domain.SessionUpcoming
	}
	if session.AssignedClients == nil {
		session.AssignedClients = []primitive.ObjectID{}
	}
	stored := *session
	stored.AssignedClients = append([]primitive.ObjectID{}, session.AssignedClients...)
	f.sessions[session.ID] = &stored
	return session.ID, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *stored
	out.AssignedClients = append([]primitive.ObjectID{}, stored.AssignedClients...)
	return &out, nil
}

func (f *fakeSessionRepo) GetAll(ctx context.Context) ([]domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Session, 0, len(f.sessions))
	for _, stored := range f.sessions {
		s := *stored
		s.AssignedClients = append([]primitive.ObjectID{}, stored.AssignedClients...)
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) AppendClient(ctx context.Context, sessionID, clientID primitive.ObjectID, maxCapacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	if maxCapacity <= 0 {
		maxCapacity = domain.DefaultMaxCapacity
	}
	if len(stored.AssignedClients) >= maxCapacity {
		return repository.ErrConflict
	}
	for _, existing := range stored.AssignedClients {
		if existing == clientID {
			return repository.ErrConflict
		}
	}
	stored.AssignedClients = append(stored.AssignedClients, clientID)
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

type fakePlanRepo struct {
	mu        sync.Mutex
	templates map[primitive.ObjectID]*domain.PlanTemplate
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{templates: make(map[primitive.ObjectID]*domain.PlanTemplate)}
}

func (f *fakePlanRepo) Create(ctx context.Context, tpl *domain.PlanTemplate) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tpl.ID = primitive.NewObjectID()
	tpl.IsTemplate = true
	if tpl.Entries == nil {
		tpl.Entries = []domain.PlanEntry{}
	}
	stored := *tpl
	stored.Entries = append([]domain.PlanEntry{}, tpl.Entries...)
	f.templates[tpl.ID] = &stored
	return tpl.ID, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.templates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *stored
	out.Entries = append([]domain.PlanEntry{}, stored.Entries...)
	return &out, nil
}

func (f *fakePlanRepo) GetTemplates(ctx context.Context) ([]domain.PlanTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.PlanTemplate, 0, len(f.templates))
	for _, stored := range f.templates {
		tpl := *stored
		tpl.Entries = append([]domain.PlanEntry{}, stored.Entries...)
		out = append(out, tpl)
	}
	return out, nil
}

func (f *fakePlanRepo) AppendWeekEntries(ctx context.Context, id primitive.ObjectID, weekNumber int, entries []domain.PlanEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.templates[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, e := range stored.Entries {
		if e.WeekNumber == weekNumber {
			return repository.ErrConflict
		}
	}
	stored.Entries = append(stored.Entries, entries...)
	return nil
}

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments []domain.Assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment.ID = primitive.NewObjectID()
	assignment.AssignedAt = time.Now().UTC()
	f.assignments = append(f.assignments, *assignment)
	return assignment.ID, nil
}

func (f *fakeAssignmentRepo) GetAll(ctx context.Context) ([]domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Assignment, len(f.assignments))
	copy(out, f.assignments)
	return out, nil
}

func (f *fakeAssignmentRepo) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Assignment
	for _, a := range f.assignments {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}
