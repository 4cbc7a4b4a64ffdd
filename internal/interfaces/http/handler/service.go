package handler

import (
	catalogapp "github.com/clientes/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ServiceHandler handles endpoints for billable services
type ServiceHandler struct {
	BaseHandler
	serviceService *catalogapp.ServiceService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceService *catalogapp.ServiceService) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
	}
}

// Create godoc
// @ID           createService
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.ItemRequest true "Service"
// @Success      201 {object} APIResponse[catalogapp.ServiceResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req catalogapp.ItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	service, err := h.serviceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, service)
}

// List godoc
// @ID           listServices
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.ServiceResponse]
// @Router       /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.serviceService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, services)
}

// GetByID godoc
// @ID           getService
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id path int true "Service ID"
// @Success      200 {object} APIResponse[catalogapp.ServiceResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /services/{id} [get]
func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	service, err := h.serviceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, service)
}

// Update godoc
// @ID           updateService
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path int true "Service ID"
// @Param        request body catalogapp.ItemRequest true "Service"
// @Success      200 {object} APIResponse[catalogapp.ServiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if !h.checkBodyID(c, id) {
		return
	}

	var req catalogapp.ItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	service, err := h.serviceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, service)
}

// Delete godoc
// @ID           deleteService
// @Summary      Delete a service
// @Tags         services
// @Param        id path int true "Service ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.serviceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
