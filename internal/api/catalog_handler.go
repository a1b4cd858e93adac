package api

import (
	"errors"
	"net/http"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs ---

type CreateClientRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone"`
	PackageID string   `json:"packageId"`
	Allergies []string `json:"allergies"`
}

type CreatePackageRequest struct {
	Name                    string  `json:"name" binding:"required"`
	DietPlanAccess          bool    `json:"dietPlanAccess"`
	LiveGroupTrainingAccess bool    `json:"liveGroupTrainingAccess"`
	LiveSessionsPerMonth    int     `json:"liveSessionsPerMonth" binding:"omitempty,min=0"`
	Price                   float64 `json:"price" binding:"omitempty,min=0"`
}

// --- Handler Methods ---

// CreateClient handles POST /clients (admin only).
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.catalogService.CreateClient(c.Request.Context(), service.CreateClientInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		PackageID: req.PackageID,
		Allergies: req.Allergies,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrUnknownPackageID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create client.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapClientToResponse(client))
}

// GetClients handles GET /clients.
func (h *CatalogHandler) GetClients(c *gin.Context) {
	clients, err := h.catalogService.GetClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients.")
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, MapClientToResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetClient handles GET /clients/:id.
func (h *CatalogHandler) GetClient(c *gin.Context) {
	clientID, ok := objectIDFromParam(c, "id")
	if !ok {
		return
	}

	client, err := h.catalogService.GetClient(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve client.")
		}
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// CreatePackage handles POST /packages (admin only).
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	pkg, err := h.catalogService.CreatePackage(c.Request.Context(), &domain.Package{
		Name:                    req.Name,
		DietPlanAccess:          req.DietPlanAccess,
		LiveGroupTrainingAccess: req.LiveGroupTrainingAccess,
		LiveSessionsPerMonth:    req.LiveSessionsPerMonth,
		Price:                   req.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicatePackage) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create package.")
		}
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// GetPackages handles GET /packages.
func (h *CatalogHandler) GetPackages(c *gin.Context) {
	packages, err := h.catalogService.GetPackages(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve packages.")
		return
	}
	if packages == nil {
		packages = []domain.Package{}
	}
	c.JSON(http.StatusOK, packages)
}
