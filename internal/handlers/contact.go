package handlers

import (
	"net/http"
	"strconv"

	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// paramID parses a positive integer path parameter, writing a 400 envelope
// on failure.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": "invalid " + name})
		return 0, false
	}
	return id, true
}

// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  service.ContactRequest  true  "Contact payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/contacts [post]
// @Security     ApiKeyAuth
func (h *Handler) createContact(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req service.ContactRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	contact, err := h.services.Contacts.Create(c.Request.Context(), user.Username, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, contact)
}

// @Summary      Get a contact by id
// @Tags         contacts
// @Produce      json
// @Param        contactId  path  int  true  "Contact id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId} [get]
// @Security     ApiKeyAuth
func (h *Handler) getContact(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	contact, err := h.services.Contacts.Get(c.Request.Context(), user.Username, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, contact)
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contactId  path  int                     true  "Contact id"
// @Param        body       body  service.ContactRequest  true  "Contact payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId} [put]
// @Security     ApiKeyAuth
func (h *Handler) updateContact(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "contactId")
	if !ok {
		return
	}
	var req service.ContactRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	contact, err := h.services.Contacts.Update(c.Request.Context(), user.Username, id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, contact)
}

// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        contactId  path  int  true  "Contact id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId} [delete]
// @Security     ApiKeyAuth
func (h *Handler) removeContact(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	if err := h.services.Contacts.Remove(c.Request.Context(), user.Username, id); err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, "OK")
}

// @Summary      Search contacts
// @Description  Substring filters combine with AND; name matches first or last name.
// @Tags         contacts
// @Produce      json
// @Param        name   query  string  false  "Name filter"
// @Param        email  query  string  false  "Email filter"
// @Param        phone  query  string  false  "Phone filter"
// @Param        page   query  int     false  "Page, default 1"
// @Param        size   query  int     false  "Page size, default 10, max 100"
// @Success      200  {object}  map[string]interface{}  "data, paging"
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/contacts [get]
// @Security     ApiKeyAuth
func (h *Handler) searchContacts(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req service.SearchContactRequest
	if ok := h.bindQuery(c, &req); !ok {
		return
	}

	contacts, paging, err := h.services.Contacts.Search(c.Request.Context(), user.Username, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondPaged(c, contacts, paging)
}
