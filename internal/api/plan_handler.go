package api

import (
	"errors"
	"net/http"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

type CreateTemplateRequest struct {
	Name           string          `json:"name" binding:"required"`
	Type           domain.PlanType `json:"type" binding:"omitempty,oneof=diet workout"`
	Category       string          `json:"category"`
	TargetCalories int             `json:"targetCalories" binding:"required,min=1"`
	TargetProtein  int             `json:"targetProtein" binding:"omitempty,min=0"`
	TargetCarbs    int             `json:"targetCarbs" binding:"omitempty,min=0"`
	TargetFats     int             `json:"targetFats" binding:"omitempty,min=0"`
	SelectedDay    string          `json:"selectedDay"`
}

type MacroPreviewRequest struct {
	TargetCalories int    `json:"targetCalories" binding:"required,min=1"`
	Category       string `json:"category"`
}

type GenerateWeekRequest struct {
	WeekNumber     int    `json:"weekNumber" binding:"required,min=1"`
	TargetCalories int    `json:"targetCalories" binding:"omitempty,min=1"`
	Category       string `json:"category"`
	Protein        *int   `json:"protein" binding:"omitempty,min=0"`
	Carbs          *int   `json:"carbs" binding:"omitempty,min=0"`
	Fats           *int   `json:"fats" binding:"omitempty,min=0"`
}

type AssignTemplateRequest struct {
	ClientIDs []string `json:"clientIds" binding:"required,min=1"`
	Day       string   `json:"day"`
}

// --- Handler Methods ---

// CreateTemplate handles POST /plans.
func (h *PlanHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := objectIDFromToken(c)
	if !ok {
		return
	}

	tpl, err := h.planService.CreateTemplate(c.Request.Context(), trainerID, service.CreateTemplateInput{
		Name:           req.Name,
		Type:           req.Type,
		Category:       req.Category,
		TargetCalories: req.TargetCalories,
		TargetProtein:  req.TargetProtein,
		TargetCarbs:    req.TargetCarbs,
		TargetFats:     req.TargetFats,
		SelectedDay:    req.SelectedDay,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingCalories) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create template.")
		}
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// GetTemplates handles GET /plans.
func (h *PlanHandler) GetTemplates(c *gin.Context) {
	templates, err := h.planService.GetTemplates(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve templates.")
		return
	}
	if templates == nil {
		templates = []domain.PlanTemplate{}
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplate handles GET /plans/:id.
func (h *PlanHandler) GetTemplate(c *gin.Context) {
	templateID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	tpl, err := h.planService.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve template.")
		}
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// PreviewMacros handles POST /plans/macros/preview. Pure computation, no
// side effects; unknown categories fall back to Balanced.
func (h *PlanHandler) PreviewMacros(c *gin.Context) {
	var req MacroPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, h.planService.PreviewMacros(req.TargetCalories, req.Category))
}

// GenerateWeek godoc
// @Summary Generate a week of entries for a template
// @Description Expands the template's calorie/macro targets into the fixed 5-entry week. Rejected with 409 when the week already exists; nothing is mutated in that case.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body GenerateWeekRequest true "Week parameters"
// @Success 201 {array} domain.PlanEntry
// @Failure 404 {object} gin.H "Template not found"
// @Failure 409 {object} gin.H "Week already exists"
// @Router /plans/{id}/weeks [post]
func (h *PlanHandler) GenerateWeek(c *gin.Context) {
	templateID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	var req GenerateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entries, err := h.planService.GenerateWeek(c.Request.Context(), templateID, service.GenerateWeekInput{
		WeekNumber:     req.WeekNumber,
		TargetCalories: req.TargetCalories,
		Category:       req.Category,
		Protein:        req.Protein,
		Carbs:          req.Carbs,
		Fats:           req.Fats,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrWeekExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrMissingCalories):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate week.")
		}
		return
	}
	c.JSON(http.StatusCreated, entries)
}

// GetClientAssignments handles GET /clients/:id/assignments.
func (h *PlanHandler) GetClientAssignments(c *gin.Context) {
	clientID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.planService.GetClientAssignments(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve assignments.")
		}
		return
	}
	if assignments == nil {
		assignments = []domain.Assignment{}
	}
	c.JSON(http.StatusOK, assignments)
}

// AssignTemplate handles POST /plans/:id/assignments. Retry-safe: clients
// already holding this plan for the day are reported by name, not
// re-assigned.
func (h *PlanHandler) AssignTemplate(c *gin.Context) {
	templateID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	var req AssignTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := objectIDFromToken(c)
	if !ok {
		return
	}

	result, err := h.planService.AssignTemplate(c.Request.Context(), trainerID, templateID, req.ClientIDs, req.Day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidClientID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to assign template.")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
