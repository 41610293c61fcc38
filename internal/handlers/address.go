package handlers

import (
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Create an address under a contact
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        contactId  path  int                     true  "Contact id"
// @Param        body       body  service.AddressRequest  true  "Address payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses [post]
// @Security     ApiKeyAuth
func (h *Handler) createAddress(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}
	var req service.AddressRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	address, err := h.services.Addresses.Create(c.Request.Context(), user.Username, contactID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, address)
}

// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  int  true  "Contact id"
// @Param        addressId  path  int  true  "Address id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses/{addressId} [get]
// @Security     ApiKeyAuth
func (h *Handler) getAddress(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := paramID(c, "addressId")
	if !ok {
		return
	}

	address, err := h.services.Addresses.Get(c.Request.Context(), user.Username, contactID, addressID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, address)
}

// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        contactId  path  int                     true  "Contact id"
// @Param        addressId  path  int                     true  "Address id"
// @Param        body       body  service.AddressRequest  true  "Address payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses/{addressId} [put]
// @Security     ApiKeyAuth
func (h *Handler) updateAddress(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := paramID(c, "addressId")
	if !ok {
		return
	}
	var req service.AddressRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	address, err := h.services.Addresses.Update(c.Request.Context(), user.Username, contactID, addressID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, address)
}

// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  int  true  "Contact id"
// @Param        addressId  path  int  true  "Address id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses/{addressId} [delete]
// @Security     ApiKeyAuth
func (h *Handler) removeAddress(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := paramID(c, "addressId")
	if !ok {
		return
	}

	if err := h.services.Addresses.Remove(c.Request.Context(), user.Username, contactID, addressID); err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, "OK")
}

// @Summary      List addresses under a contact
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  int  true  "Contact id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses [get]
// @Security     ApiKeyAuth
func (h *Handler) listAddresses(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	addresses, err := h.services.Addresses.List(c.Request.Context(), user.Username, contactID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, addresses)
}
