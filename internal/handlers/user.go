package handlers

import (
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  service.RegisterRequest  true  "Registration payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/users [post]
func (h *Handler) register(c *gin.Context) {
	var req service.RegisterRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	user, err := h.services.Users.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, user)
}

// @Summary      Log in and receive a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  service.LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/users/login [post]
func (h *Handler) login(c *gin.Context) {
	var req service.LoginRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	token, err := h.services.Users.Login(c.Request.Context(), req)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", req.Username)
		}
		h.respondError(c, err)
		return
	}
	respondData(c, gin.H{"token": token})
}

// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/users/current [get]
// @Security     ApiKeyAuth
func (h *Handler) getCurrentUser(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	// Re-read from the store: the account may have vanished between
	// authorization and this lookup.
	u, err := h.services.Users.Get(c.Request.Context(), user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, u)
}

// @Summary      Update name and/or password of the current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  service.UpdateUserRequest  true  "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/users/current [patch]
// @Security     ApiKeyAuth
func (h *Handler) updateUser(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	updated, err := h.services.Users.Update(c.Request.Context(), user.Username, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, updated)
}

// @Summary      Log out, invalidating the session token
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/users/logout [delete]
// @Security     ApiKeyAuth
func (h *Handler) logout(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.services.Users.Logout(c.Request.Context(), user.Username); err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, "OK")
}
