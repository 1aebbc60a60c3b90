package handler

import (
	"pst-registry/internal/adapter/http/dto"
	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles category and service assignment endpoints.
type CatalogHandler struct {
	catalog ports.ServiceCatalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog ports.ServiceCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories handles GET /api/v1/tokens/:address/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}

	categories, err := h.catalog.ListCategories(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		items = append(items, dto.CategoryResponse{Tag: cat.Tag.String(), Description: cat.Description})
	}
	response.OK(c, items)
}

// GetCategory handles GET /api/v1/tokens/:address/categories/:tag.
// An unset category answers with an empty description.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	tag, ok := tagParam(c, "tag")
	if !ok {
		return
	}

	desc, err := h.catalog.GetCategory(c.Request.Context(), token, tag)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CategoryResponse{Tag: tag.String(), Description: desc})
}

// AddCategory handles PUT /api/v1/tokens/:address/categories/:tag.
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	tag, ok := tagParam(c, "tag")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.catalog.AddCategory(c.Request.Context(), token, tag, req.Description, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CategoryResponse{Tag: tag.String(), Description: req.Description})
}

// ListServices handles GET /api/v1/tokens/:address/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}

	services, err := h.catalog.ListServices(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, toServiceResponse(&services[i]))
	}
	response.OK(c, items)
}

// GetService handles GET /api/v1/tokens/:address/services/:service_id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	category, err := h.catalog.GetService(ctx, token, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	provider, err := h.catalog.IsProvider(ctx, token, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ServiceResponse{
		ServiceID:  uint64(id),
		Category:   category,
		IsProvider: provider,
	})
}

// AddService handles PUT /api/v1/tokens/:address/services/:service_id.
func (h *CatalogHandler) AddService(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	var req dto.AddServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := domain.ParseTag(req.Category)
	if err != nil {
		response.Error(c, apperror.InvalidArgument(err))
		return
	}

	if err := h.catalog.AddService(c.Request.Context(), token, id, category, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ServiceResponse{
		ServiceID:  uint64(id),
		Category:   category.String(),
		IsProvider: true,
	})
}

// RemoveService handles DELETE /api/v1/tokens/:address/services/:service_id.
func (h *CatalogHandler) RemoveService(c *gin.Context) {
	caller, ok := callerEIN(c)
	if !ok {
		return
	}
	token, ok := addressParam(c, "address")
	if !ok {
		return
	}
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}

	if err := h.catalog.RemoveService(c.Request.Context(), token, id, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ServiceResponse{ServiceID: uint64(id)})
}

func toServiceResponse(s *domain.ServiceAssignment) dto.ServiceResponse {
	resp := dto.ServiceResponse{
		ServiceID:  uint64(s.ServiceID),
		Category:   s.Category.String(),
		IsProvider: s.Active,
	}
	if s.RemovedAt != nil {
		removed := formatTime(*s.RemovedAt)
		resp.RemovedAt = &removed
	}
	return resp
}
