package api

import (
	"net/http"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	sessionService service.SessionService,
	planService service.PlanService,
) {
	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	sessionHandler := NewSessionHandler(sessionService)
	planHandler := NewPlanHandler(planService)

	authMiddleware := AuthMiddleware(jwtSecret)
	staffOnly := RoleMiddleware(domain.RoleAdmin, domain.RoleTrainer)
	adminOnly := RoleMiddleware(domain.RoleAdmin)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Client Roster ---
		clientGroup := protected.Group("/clients")
		clientGroup.Use(staffOnly)
		{
			clientGroup.POST("", adminOnly, catalogHandler.CreateClient)
			clientGroup.GET("", catalogHandler.GetClients)
			clientGroup.GET("/:id", catalogHandler.GetClient)
			clientGroup.GET("/:id/assignments", planHandler.GetClientAssignments)
		}

		// --- Package Catalog ---
		packageGroup := protected.Group("/packages")
		packageGroup.Use(staffOnly)
		{
			packageGroup.POST("", adminOnly, catalogHandler.CreatePackage)
			packageGroup.GET("", catalogHandler.GetPackages)
		}

		// --- Live Sessions ---
		sessionGroup := protected.Group("/sessions")
		sessionGroup.Use(staffOnly)
		{
			sessionGroup.POST("", sessionHandler.CreateSession)
			sessionGroup.GET("", sessionHandler.GetSessions)
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.GET("/:id/eligible-clients", sessionHandler.GetEligibleClients)
			sessionGroup.POST("/:id/assignments", sessionHandler.AssignClients)
		}

		// --- Plan Templates ---
		planGroup := protected.Group("/plans")
		planGroup.Use(staffOnly)
		{
			planGroup.POST("", planHandler.CreateTemplate)
			planGroup.GET("", planHandler.GetTemplates)
			planGroup.POST("/macros/preview", planHandler.PreviewMacros)
			planGroup.GET("/:id", planHandler.GetTemplate)
			planGroup.POST("/:id/weeks", planHandler.GenerateWeek)
			planGroup.POST("/:id/assignments", planHandler.AssignTemplate)
		}
	}
}
