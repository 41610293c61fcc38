package handlers

import (
	"contactbook/internal/logger"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public endpoints
	router.POST("/api/users", h.register)
	router.POST("/api/users/login", h.login)

	// Protected endpoints: everything below resolves the caller from the
	// Authorization token first.
	api := router.Group("/api", h.authMiddleware)
	{
		h.registerUserRoutes(api)
		h.registerContactRoutes(api)
	}

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/current", h.getCurrentUser)
		users.PATCH("/current", h.updateUser)
		users.DELETE("/logout", h.logout)
	}
}

func (h *Handler) registerContactRoutes(api *gin.RouterGroup) {
	contacts := api.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.searchContacts)
		contacts.GET("/:contactId", h.getContact)
		contacts.PUT("/:contactId", h.updateContact)
		contacts.DELETE("/:contactId", h.removeContact)

		addresses := contacts.Group("/:contactId/addresses")
		{
			addresses.POST("", h.createAddress)
			addresses.GET("", h.listAddresses)
			addresses.GET("/:addressId", h.getAddress)
			addresses.PUT("/:addressId", h.updateAddress)
			addresses.DELETE("/:addressId", h.removeAddress)
		}
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
