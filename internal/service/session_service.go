package service

import (
	"context"
	"errors"
	"time"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/engine"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidClientID = errors.New("invalid client id")
)

// CreateSessionInput carries the fields a trainer supplies for a new session.
type CreateSessionInput struct {
	Title           string
	ScheduledAt     time.Time
	DurationMinutes int
	PlanTag         string
	MaxCapacity     int
}

// BatchAssignResult is the partial-success outcome reported to the caller:
// how many seats were filled and, per rejected client, why.
type BatchAssignResult struct {
	Assigned int                  `json:"assigned"`
	Errors   []engine.AssignError `json:"errors"`
}

// --- Service Interface ---
type SessionService interface {
	CreateSession(ctx context.Context, trainerID primitive.ObjectID, input CreateSessionInput) (*domain.Session, error)
	GetSessions(ctx context.Context) ([]domain.Session, error)
	GetSession(ctx context.Context, id primitive.ObjectID) (*domain.Session, error)
	GetEligibleClients(ctx context.Context, sessionID primitive.ObjectID, planTag string) ([]domain.Client, error)
	AssignClients(ctx context.Context, sessionID primitive.ObjectID, clientIDs []string) (*BatchAssignResult, error)
}

// --- Service Implementation ---

// sessionService implements the SessionService interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	clientRepo  repository.ClientRepository
	packageRepo repository.PackageRepository
	locks       *keyedLocks
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	clientRepo repository.ClientRepository,
	packageRepo repository.PackageRepository,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		clientRepo:  clientRepo,
		packageRepo: packageRepo,
		locks:       newKeyedLocks(),
	}
}

// CreateSession schedules a new live session for the trainer.
func (s *sessionService) CreateSession(ctx context.Context, trainerID primitive.ObjectID, input CreateSessionInput) (*domain.Session, error) {
	if trainerID == primitive.NilObjectID || input.Title == "" {
		return nil, errors.New("trainer ID and session title are required")
	}

	session := &domain.Session{
		TrainerID:       trainerID,
		Title:           input.Title,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		PlanTag:         input.PlanTag,
		MaxCapacity:     input.MaxCapacity,
		Status:          domain.SessionUpcoming,
	}

	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID
	return session, nil
}

// GetSessions returns all sessions.
func (s *sessionService) GetSessions(ctx context.Context) ([]domain.Session, error) {
	return s.sessionRepo.GetAll(ctx)
}

// GetSession returns one session with its roster.
func (s *sessionService) GetSession(ctx context.Context, id primitive.ObjectID) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// GetEligibleClients returns the clients who may be offered the session,
// applying the package/plan-tag whitelist and excluding clients committed
// to a different open session. When planTag is empty the session's own tag
// is used.
func (s *sessionService) GetEligibleClients(ctx context.Context, sessionID primitive.ObjectID, planTag string) ([]domain.Client, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if planTag == "" {
		planTag = session.PlanTag
	}

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	packages, err := s.packageRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve package references once, at the boundary.
	packageNames := make(map[string]string, len(packages))
	for _, p := range packages {
		packageNames[p.ID.Hex()] = p.Name
	}

	views := make([]engine.ClientView, 0, len(clients))
	for _, c := range clients {
		if !c.IsActive {
			continue
		}
		view := engine.ClientView{ID: c.ID.Hex(), Name: c.Name}
		if c.HasPackage() {
			view.PackageName = packageNames[c.PackageID.Hex()]
		}
		views = append(views, view)
	}

	inThisSession := make(map[string]bool, len(session.AssignedClients))
	for _, id := range session.AssignedClients {
		inThisSession[id.Hex()] = true
	}
	committedElsewhere := make(map[string]bool)
	for _, other := range sessions {
		if other.ID == session.ID || !other.IsOpen() {
			continue
		}
		for _, id := range other.AssignedClients {
			committedElsewhere[id.Hex()] = true
		}
	}

	eligible := engine.EligibleClients(views, planTag, committedElsewhere, inThisSession)

	byID := make(map[string]domain.Client, len(clients))
	for _, c := range clients {
		byID[c.ID.Hex()] = c
	}
	result := make([]domain.Client, 0, len(eligible))
	for _, v := range eligible {
		result = append(result, byID[v.ID])
	}
	return result, nil
}

// AssignClients assigns the candidates to the session in order, partial
// success. The capacity check and the roster append are serialized per
// session, and the roster write itself is capacity-guarded, so concurrent
// requests cannot overbook.
func (s *sessionService) AssignClients(ctx context.Context, sessionID primitive.ObjectID, clientIDs []string) (*BatchAssignResult, error) {
	candidates := make([]primitive.ObjectID, 0, len(clientIDs))
	for _, raw := range clientIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, ErrInvalidClientID
		}
		candidates = append(candidates, id)
	}

	lock := s.locks.get(sessionID.Hex())
	lock.Lock()
	defer lock.Unlock()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	roster := make([]string, 0, len(session.AssignedClients))
	for _, id := range session.AssignedClients {
		roster = append(roster, id.Hex())
	}
	candidateHexes := make([]string, 0, len(candidates))
	for _, id := range candidates {
		candidateHexes = append(candidateHexes, id.Hex())
	}

	batch := engine.AssignBatch(roster, session.Capacity(), candidateHexes)

	result := &BatchAssignResult{Errors: batch.Errors}
	for _, hex := range batch.Assigned {
		clientID, _ := primitive.ObjectIDFromHex(hex)
		err := s.sessionRepo.AppendClient(ctx, sessionID, clientID, session.Capacity())
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				// An external writer beat us to the seat.
				result.Errors = append(result.Errors, engine.AssignError{ClientID: hex, Reason: engine.ReasonAlreadyAssigned})
				continue
			}
			return nil, err
		}
		result.Assigned++
	}
	return result, nil
}
