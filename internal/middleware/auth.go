package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"finanzas-api/internal/models"
	"finanzas-api/internal/repository"
	"finanzas-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	authCookieName = "auth-token"
	tokenLifetime  = 24 * time.Hour

	// Bloqueo simple de intentos de login por IP
	maxLoginAttempts = 5
	lockWindow       = 15 * time.Minute
)

type loginAttempt struct {
	count       int
	lockedUntil time.Time
}

var (
	loginAttempts = make(map[string]*loginAttempt) // ip -> intentos
	attemptsMutex sync.Mutex
)

var userRepo *repository.UserRepository

func InitAuth() {
	userRepo = repository.NewUserRepository()
}

// AuthMiddleware acepta el token firmado desde la cookie de sesión o,
// como alternativa, desde el header Authorization
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(authCookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
				c.Abort()
				return
			}
			tokenString = strings.Replace(authHeader, "Bearer ", "", 1)
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userId", claims["userId"])
		c.Set("email", claims["email"])
		c.Set("perfil", claims["perfil"])
		c.Next()
	}
}

func GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"perfil": user.Perfil,
		"exp":    time.Now().Add(tokenLifetime).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func GenerateResetToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func setAuthCookie(c *gin.Context, token string) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, int(tokenLifetime.Seconds()), "/", "", secure, true)
}

func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.ClientIP()
}

func isLocked(ip string) bool {
	attemptsMutex.Lock()
	defer attemptsMutex.Unlock()

	attempt, exists := loginAttempts[ip]
	if !exists {
		return false
	}
	if time.Now().After(attempt.lockedUntil) {
		delete(loginAttempts, ip)
		return false
	}
	return attempt.count >= maxLoginAttempts
}

func registerFailedAttempt(ip string) {
	attemptsMutex.Lock()
	defer attemptsMutex.Unlock()

	attempt, exists := loginAttempts[ip]
	if !exists || time.Now().After(attempt.lockedUntil) {
		attempt = &loginAttempt{}
		loginAttempts[ip] = attempt
	}
	attempt.count++
	attempt.lockedUntil = time.Now().Add(lockWindow)
}

func resetAttempts(ip string) {
	attemptsMutex.Lock()
	defer attemptsMutex.Unlock()

	delete(loginAttempts, ip)
}

func Login(c *gin.Context) {
	var login struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := clientIP(c)
	if isLocked(ip) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Demasiados intentos fallidos. Intenta de nuevo en unos minutos"})
		return
	}

	// Verificar si el usuario existe
	user, err := userRepo.GetUserByEmail(login.Email)
	if err != nil {
		registerFailedAttempt(ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña inválidos"})
		return
	}

	// Verificar la contraseña
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		registerFailedAttempt(ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña inválidos"})
		return
	}

	token, err := GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	resetAttempts(ip)
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"name":   user.Name,
			"perfil": user.Perfil,
		},
	})
}

func Signup(c *gin.Context) {
	var signup struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name" binding:"required"`
		Perfil   string `json:"perfil"`
	}

	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar si el email ya está registrado
	if _, err := userRepo.GetUserByEmail(signup.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado"})
		return
	}

	// Hash de la contraseña
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la contraseña"})
		return
	}

	perfil := models.PerfilUser
	if signup.Perfil == models.PerfilAdmin {
		perfil = models.PerfilAdmin
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    signup.Email,
		Password: string(hashedPassword),
		Name:     signup.Name,
		Perfil:   perfil,
	}

	if err := userRepo.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear usuario"})
		return
	}

	token, err := GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro exitoso",
		"token":   token,
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"name":   user.Name,
			"perfil": user.Perfil,
		},
	})
}

func Logout(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

func RequestResetPassword(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Respondemos lo mismo exista o no el usuario para no filtrar emails
	if _, err := userRepo.GetUserByEmail(request.Email); err == nil {
		token, err := GenerateResetToken(request.Email)
		if err == nil {
			_ = services.SendPasswordResetEmail(request.Email, token)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Si el email existe, se envió un token de restablecimiento"})
}

func ResetPassword(c *gin.Context) {
	var request struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := jwt.Parse(request.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	if err := userRepo.UpdatePassword(email, request.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la contraseña"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada exitosamente"})
}
