package handlers

import (
	"contactbook/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "authUser"

// authMiddleware resolves the raw token from the Authorization header (no
// "Bearer " prefix) to a user and stores it in the gin context. All
// ownership scoping downstream starts from this identity.
func (h *Handler) authMiddleware(c *gin.Context) {
	token := c.GetHeader("Authorization")
	user, err := h.services.Users.Authorize(c.Request.Context(), token)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// currentUser returns the user resolved by authMiddleware. Missing identity
// on a protected route means broken route wiring, reported as 401.
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "unauthorized"})
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "unauthorized"})
		return nil, false
	}
	return user, true
}
