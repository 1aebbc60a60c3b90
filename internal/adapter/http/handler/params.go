package handler

import (
	"time"

	"pst-registry/internal/adapter/http/dto"
	"pst-registry/internal/adapter/http/middleware"
	"pst-registry/internal/core/domain"
	"pst-registry/pkg/apperror"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// Path parameter parsers. Each writes the error response itself and
// reports false, so handlers simply return.

func addressParam(c *gin.Context, name string) (domain.Address, bool) {
	addr, err := domain.ParseAddress(c.Param(name))
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return domain.Address{}, false
	}
	return addr, true
}

func einParam(c *gin.Context) (domain.EIN, bool) {
	ein, err := domain.ParseEIN(c.Param("ein"))
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return 0, false
	}
	return ein, true
}

func tagParam(c *gin.Context, name string) (domain.Tag, bool) {
	tag, err := domain.ParseTag(c.Param(name))
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return domain.Tag{}, false
	}
	return tag, true
}

func serviceIDParam(c *gin.Context) (domain.ServiceID, bool) {
	id, err := domain.ParseServiceID(c.Param("service_id"))
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return 0, false
	}
	return id, true
}

func callerEIN(c *gin.Context) (domain.EIN, bool) {
	ein, ok := middleware.CallerEIN(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return 0, false
	}
	return ein, true
}

// bindJSON binds and sanitizes a request body.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
