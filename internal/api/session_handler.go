package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler holds the session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

type CreateSessionRequest struct {
	Title           string    `json:"title" binding:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=1"`
	PlanTag         string    `json:"planTag"`
	MaxCapacity     int       `json:"maxCapacity" binding:"omitempty,min=1"`
}

type AssignClientsRequest struct {
	ClientIDs []string `json:"clientIds" binding:"required,min=1"`
}

type ClientResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	PackageID *string  `json:"packageId,omitempty"`
	Allergies []string `json:"allergies,omitempty"`
	IsActive  bool     `json:"isActive"`
}

// MapClientToResponse converts a domain client to its API shape.
func MapClientToResponse(client *domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:        client.ID.Hex(),
		Name:      client.Name,
		Email:     client.Email,
		Allergies: client.Allergies,
		IsActive:  client.IsActive,
	}
	if client.HasPackage() {
		hex := client.PackageID.Hex()
		resp.PackageID = &hex
	}
	return resp
}

// --- Handler Methods ---

// CreateSession handles POST /sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := objectIDFromToken(c)
	if !ok {
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), trainerID, service.CreateSessionInput{
		Title:           req.Title,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		PlanTag:         req.PlanTag,
		MaxCapacity:     req.MaxCapacity,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create session.")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions handles GET /sessions.
func (h *SessionHandler) GetSessions(c *gin.Context) {
	sessions, err := h.sessionService.GetSessions(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions.")
		return
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve session.")
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetEligibleClients godoc
// @Summary List clients eligible for a session
// @Description Applies the package/plan-tag whitelist and excludes clients committed to another open session. Clients already on this session's roster are retained so the caller can render their assigned state.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param planTag query string false "Override the session's plan tag"
// @Success 200 {array} ClientResponse
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id}/eligible-clients [get]
func (h *SessionHandler) GetEligibleClients(c *gin.Context) {
	sessionID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	clients, err := h.sessionService.GetEligibleClients(c.Request.Context(), sessionID, c.Query("planTag"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute eligible clients.")
		}
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, MapClientToResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AssignClients godoc
// @Summary Batch-assign clients to a session
// @Description Partial-success: fills seats in request order up to the session's capacity and reports per-client rejections ("already assigned", "batch full") without rolling back successes.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body AssignClientsRequest true "Candidate client ids, in order"
// @Success 200 {object} service.BatchAssignResult
// @Failure 400 {object} gin.H "Invalid client id"
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id}/assignments [post]
func (h *SessionHandler) AssignClients(c *gin.Context) {
	sessionID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	var req AssignClientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.sessionService.AssignClients(c.Request.Context(), sessionID, req.ClientIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidClientID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to assign clients.")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// --- Shared param helpers ---

func objectIDFromParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func objectIDFromToken(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return id, true
}
