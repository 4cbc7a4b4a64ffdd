package handler

import (
	customerapp "github.com/clientes/backend/internal/application/customer"
	"github.com/clientes/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AddressHandler handles standalone address endpoints
type AddressHandler struct {
	BaseHandler
	addressService *customerapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *customerapp.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// Create godoc
// @ID           createAddress
// @Summary      Create an address
// @Description  Attaches an address to the active customer named by customer_id
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        request body customerapp.CreateAddressRequest true "Address"
// @Success      201 {object} APIResponse[customerapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req customerapp.CreateAddressRequest
	if !h.bindJSON(c, &req) {
		return
	}

	address, err := h.addressService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, address)
}

// List godoc
// @ID           listAddresses
// @Summary      List addresses
// @Tags         addresses
// @Produce      json
// @Param        customer_id query int false "Only addresses of this customer"
// @Success      200 {object} APIResponse[[]customerapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	var filter dto.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid customer_id")
		return
	}

	addresses, err := h.addressService.List(c.Request.Context(), filter.CustomerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, addresses)
}

// GetByID godoc
// @ID           getAddress
// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Param        id path int true "Address ID"
// @Success      200 {object} APIResponse[customerapp.AddressResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /addresses/{id} [get]
func (h *AddressHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	address, err := h.addressService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, address)
}

// Update godoc
// @ID           updateAddress
// @Summary      Update an address
// @Description  Overwrites the postal fields. The owner never changes.
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id path int true "Address ID"
// @Param        request body customerapp.UpdateAddressRequest true "Address"
// @Success      200 {object} APIResponse[customerapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if !h.checkBodyID(c, id) {
		return
	}

	var req customerapp.UpdateAddressRequest
	if !h.bindJSON(c, &req) {
		return
	}

	address, err := h.addressService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, address)
}

// Delete godoc
// @ID           deleteAddress
// @Summary      Delete an address
// @Tags         addresses
// @Param        id path int true "Address ID"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
