package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/clientes/backend/internal/application/catalog"
	customerapp "github.com/clientes/backend/internal/application/customer"
	"github.com/clientes/backend/internal/infrastructure/config"
	"github.com/clientes/backend/internal/infrastructure/cpf"
	"github.com/clientes/backend/internal/infrastructure/persistence"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"github.com/clientes/backend/internal/interfaces/http/dto"
	"github.com/clientes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// rejectedCPFSuffix makes the stub validator refuse CPFs ending in it
const rejectedCPFSuffix = "000"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
}

// newTestEngine mounts every handler on a fresh in-memory SQLite database
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.DB.AutoMigrate(models.All()...))

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)

	customers := NewCustomerHandler(customerapp.NewCustomerService(
		customerRepo,
		cpf.NewStubValidator([]string{rejectedCPFSuffix}),
	))
	addresses := NewAddressHandler(customerapp.NewAddressService(addressRepo, customerRepo))
	products := NewProductHandler(catalogapp.NewProductService(persistence.NewGormProductRepository(db.DB)))
	services := NewServiceHandler(catalogapp.NewServiceService(persistence.NewGormServiceRepository(db.DB)))

	engine := gin.New()
	engine.Use(middleware.RequestID())
	api := engine.Group("/api")
	mount(api, "/customers", customers.List, customers.Create, customers.GetByID, customers.Update, customers.Delete)
	mount(api, "/addresses", addresses.List, addresses.Create, addresses.GetByID, addresses.Update, addresses.Delete)
	mount(api, "/products", products.List, products.Create, products.GetByID, products.Update, products.Delete)
	mount(api, "/services", services.List, services.Create, services.GetByID, services.Update, services.Delete)
	return engine
}

func mount(api *gin.RouterGroup, prefix string, list, create, get, update, remove gin.HandlerFunc) {
	g := api.Group(prefix)
	g.GET("", list)
	g.POST("", create)
	g.GET("/:id", get)
	g.PUT("/:id", update)
	g.DELETE("/:id", remove)
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func detailFields(env envelope) []string {
	if env.Error == nil {
		return nil
	}
	fields := make([]string, 0, len(env.Error.Details))
	for _, d := range env.Error.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func addressBody(street string) map[string]any {
	return map[string]any{
		"street":      street,
		"number":      "10",
		"district":    "Boa Viagem",
		"city":        "Recife",
		"state":       "pe",
		"postal_code": "51020-000",
	}
}

func customerBody(cpf, email string, addresses ...map[string]any) map[string]any {
	if addresses == nil {
		addresses = []map[string]any{}
	}
	return map[string]any{
		"name":       "Ana",
		"surname":    "Souza",
		"email":      email,
		"cpf":        cpf,
		"phone":      "81 98765-4321",
		"birth_date": "1990-05-17",
		"addresses":  addresses,
	}
}

func createCustomer(t *testing.T, engine *gin.Engine, cpf, email string, addresses ...map[string]any) customerapp.CustomerResponse {
	t.Helper()
	w, env := doRequest(t, engine, http.MethodPost, "/api/customers", customerBody(cpf, email, addresses...))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[customerapp.CustomerResponse](t, env)
}
