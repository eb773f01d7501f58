package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"finanzas-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protegida", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("userId"),
			"perfil": c.GetString("perfil"),
		})
	})
	router.GET("/admin", AuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func TestGenerateTokenIncluyeLosClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	user := &models.User{ID: "user-1", Email: "ana@example.com", Perfil: models.PerfilUser}
	signed, err := GenerateToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["userId"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, models.PerfilUser, claims["perfil"])
	assert.NotEmpty(t, claims["exp"])
}

func TestAuthMiddlewareAceptaLaCookieDeSesion(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerateToken(&models.User{ID: "user-1", Email: "ana@example.com", Perfil: models.PerfilUser})
	require.NoError(t, err)

	router := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareAceptaElHeaderBearer(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerateToken(&models.User{ID: "user-2", Email: "bruno@example.com", Perfil: models.PerfilUser})
	require.NoError(t, err)

	router := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-2")
}

func TestAuthMiddlewareSinTokenRechaza(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	router := newAuthRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegida", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareFirmaInvalidaRechaza(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerateToken(&models.User{ID: "user-1", Email: "ana@example.com"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "otro-secreto")

	router := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRechazaUsuariosComunes(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerateToken(&models.User{ID: "user-1", Email: "ana@example.com", Perfil: models.PerfilUser})
	require.NoError(t, err)

	router := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAceptaAdministradores(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerateToken(&models.User{ID: "admin-1", Email: "root@example.com", Perfil: models.PerfilAdmin})
	require.NoError(t, err)

	router := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBloqueoDeIntentosDeLogin(t *testing.T) {
	ip := "203.0.113.7"
	resetAttempts(ip)

	assert.False(t, isLocked(ip))
	for i := 0; i < maxLoginAttempts; i++ {
		registerFailedAttempt(ip)
	}
	assert.True(t, isLocked(ip), "tras cinco fallos la IP queda bloqueada")

	resetAttempts(ip)
	assert.False(t, isLocked(ip), "un login exitoso limpia el contador")
}

func TestBloqueoNoAfectaOtrasIPs(t *testing.T) {
	bloqueada := "203.0.113.8"
	libre := "203.0.113.9"
	resetAttempts(bloqueada)
	resetAttempts(libre)

	for i := 0; i < maxLoginAttempts; i++ {
		registerFailedAttempt(bloqueada)
	}

	assert.True(t, isLocked(bloqueada))
	assert.False(t, isLocked(libre))
}
