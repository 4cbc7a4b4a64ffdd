package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clientes/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Empty(t, r.apiVersion)
	assert.Empty(t, r.registrars)
	assert.Equal(t, "/api", r.Prefix())
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "/api/v2", r.Prefix())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		c.Header("X-Api", "1")
		c.Next()
	}))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, "1", w.Header().Get("X-Api"))

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/test/ping").Code)
}

func TestDomainGroup(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("customers", "/customers")
		assert.Equal(t, "customers", g.Name())
		assert.Equal(t, "/customers", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").
			GET("/items", ok).
			POST("/items", ok).
			PUT("/items/:id", ok).
			DELETE("/items/:id", ok)
		g.RegisterRoutes(engine.Group("/api"))

		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/test/items"},
			{http.MethodPost, "/api/test/items"},
			{http.MethodPut, "/api/test/items/1"},
			{http.MethodDelete, "/api/test/items/1"},
		} {
			assert.Equal(t, http.StatusOK, serve(engine, tc.method, tc.path).Code, "%s %s", tc.method, tc.path)
		}
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})
		g.GET("/items", ok)
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/test/items")
		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("customers", "/customers")
		g.Group("addresses", "/:id/addresses").GET("", func(c *gin.Context) {
			c.String(http.StatusOK, c.Param("id"))
		})
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/customers/7/addresses")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7", w.Body.String())
		assert.Equal(t, []string{"GET /customers/:id/addresses"}, g.Routes())
	})
}

func TestHandlersGroups(t *testing.T) {
	engine := gin.New()
	h := Handlers{
		Customer: handler.NewCustomerHandler(nil),
		Address:  handler.NewAddressHandler(nil),
		Product:  handler.NewProductHandler(nil),
		Service:  handler.NewServiceHandler(nil),
	}
	NewRouter(engine).Register(h.Groups()...).Setup()
	RegisterHealth(engine, handler.NewHealthHandler(nil, "test"))

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, resource := range []string{"customers", "addresses", "products", "services"} {
		for _, route := range []string{
			"GET /api/" + resource,
			"POST /api/" + resource,
			"GET /api/" + resource + "/:id",
			"PUT /api/" + resource + "/:id",
			"DELETE /api/" + resource + "/:id",
		} {
			assert.True(t, registered[route], "missing %s", route)
		}
	}
	assert.True(t, registered["GET /health"])
	assert.True(t, registered["GET /health/ready"])
	require.Len(t, engine.Routes(), 22)
}
