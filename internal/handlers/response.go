package handlers

import (
	"contactbook/internal/apperror"
	"contactbook/internal/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const errInternal = "internal server error"

// respondData writes the success envelope.
func respondData(c *gin.Context, v any) {
	c.JSON(http.StatusOK, gin.H{"data": v})
}

// respondPaged writes the search envelope with paging metadata.
func respondPaged(c *gin.Context, items any, paging models.Paging) {
	c.JSON(http.StatusOK, gin.H{"data": items, "paging": paging})
}

// respondError is the single normalization point: every failure becomes a
// {errors: message-or-array} envelope. Validation errors keep their
// per-field messages; typed service errors keep their status; anything
// unrecognized is masked as a 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	if appErr, ok := apperror.As(err); ok {
		c.AbortWithStatusJSON(appErr.Status, gin.H{"errors": appErr.Message})
		return
	}

	if h.log != nil {
		h.log.Errorw("request_failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": errInternal})
}

// fieldMessage renders a single binding failure as a client message.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "min":
		return field + " must be at least " + fe.Param()
	default:
		return field + " is invalid"
	}
}

// bindJSON binds the request body into dst, writing the error envelope on
// failure. Returns false if the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			h.respondError(c, err)
		} else {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		}
		return false
	}
	return true
}

// bindQuery binds query parameters into dst, writing the error envelope on
// failure.
func (h *Handler) bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			h.respondError(c, err)
		} else {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": "invalid query parameters"})
		}
		return false
	}
	return true
}
