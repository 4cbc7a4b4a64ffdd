package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func swaggerRouter(cfg SwaggerConfig) *gin.Engine {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "swagger")
	})
	return router
}

func TestSwaggerProtection(t *testing.T) {
	tests := []struct {
		name       string
		cfg        SwaggerConfig
		remoteAddr string
		want       int
	}{
		{"disabled", SwaggerConfig{Enabled: false}, "10.0.0.1:1234", http.StatusNotFound},
		{"enabled without restrictions", SwaggerConfig{Enabled: true}, "10.0.0.1:1234", http.StatusOK},
		{"exact ip allowed", SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.1"}}, "10.0.0.1:1234", http.StatusOK},
		{"ip denied", SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.1"}}, "10.0.0.2:1234", http.StatusForbidden},
		{"cidr allowed", SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.0.0/16"}}, "192.168.4.20:1234", http.StatusOK},
		{"cidr denied", SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.0.0/16"}}, "172.16.0.1:1234", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
			req.RemoteAddr = tt.remoteAddr
			w := httptest.NewRecorder()
			swaggerRouter(tt.cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusNotFound {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestAllowList(t *testing.T) {
	list := parseAllowList([]string{"127.0.0.1", " 10.1.0.0/24 ", "::1", "not-an-ip", "300.0.0.0/8"})

	assert.Len(t, list, 3)
	assert.True(t, list.contains("127.0.0.1"))
	assert.True(t, list.contains("10.1.0.9"))
	assert.True(t, list.contains("::1"))
	assert.True(t, list.contains("::ffff:127.0.0.1"))
	assert.False(t, list.contains("10.1.1.9"))
	assert.False(t, list.contains(""))
}

func TestSwaggerProtection_OnlyInvalidEntriesDenyAll(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	swaggerRouter(SwaggerConfig{Enabled: true, AllowedIPs: []string{"bogus"}}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"FORBIDDEN"`)
}
