package router

import (
	"github.com/clientes/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the resource handlers mounted under BasePath
type Handlers struct {
	Customer *handler.CustomerHandler
	Address  *handler.AddressHandler
	Product  *handler.ProductHandler
	Service  *handler.ServiceHandler
}

// Groups returns one DomainGroup per resource
func (h Handlers) Groups() []RouteRegistrar {
	return []RouteRegistrar{
		crud("customers", h.Customer.List, h.Customer.Create, h.Customer.GetByID, h.Customer.Update, h.Customer.Delete),
		crud("addresses", h.Address.List, h.Address.Create, h.Address.GetByID, h.Address.Update, h.Address.Delete),
		crud("products", h.Product.List, h.Product.Create, h.Product.GetByID, h.Product.Update, h.Product.Delete),
		crud("services", h.Service.List, h.Service.Create, h.Service.GetByID, h.Service.Update, h.Service.Delete),
	}
}

func crud(name string, list, create, get, update, remove gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup(name, "/"+name).
		GET("", list).
		POST("", create).
		GET("/:id", get).
		PUT("/:id", update).
		DELETE("/:id", remove)
}

// RegisterHealth mounts the liveness and readiness probes outside BasePath
func RegisterHealth(engine *gin.Engine, h *handler.HealthHandler) {
	engine.GET("/health", h.Health)
	engine.GET("/health/ready", h.Ready)
}
