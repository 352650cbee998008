package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plaudstore/backend/internal/domain/shared"
	"github.com/plaudstore/backend/internal/interfaces/http/dto"
)

// BaseHandler provides shared response helpers for all handlers
type BaseHandler struct{}

// Fail writes an error response with the given status
func (h *BaseHandler) Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(message))
}

// HandleDomainError maps a domain error to its HTTP status and wire
// message. Unknown errors become a generic 500 so internals never leak.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.StatusForCode(domainErr.Code), dto.NewErrorResponse(domainErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
}
