package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/models"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecretKey = "test-secret"

func newAuthTestRouter(t *testing.T) (*gin.Engine, *services.UserService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))

	userService := services.NewUserService(db, testSecretKey)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(testSecretKey, userService), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"userId": ctx.GetInt("userId")})
	})

	return router, userService, db
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signTestToken(t *testing.T, userId int, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecretKey))
	require.NoError(t, err)

	return signed
}

func TestAuthMiddlewareMissingCookie(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := requestWithToken(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router, userService, _ := newAuthTestRouter(t)

	userId, err := userService.RegisterUser("user@example.com", "s3cret")
	require.NoError(t, err)

	w := requestWithToken(router, signTestToken(t, userId, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router, userService, _ := newAuthTestRouter(t)

	userId, err := userService.RegisterUser("user@example.com", "s3cret")
	require.NoError(t, err)

	w := requestWithToken(router, signTestToken(t, userId, time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := requestWithToken(router, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddlewareDeletedSubject(t *testing.T) {
	router, userService, db := newAuthTestRouter(t)

	userId, err := userService.RegisterUser("user@example.com", "s3cret")
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.UserModel{}, userId).Error)

	w := requestWithToken(router, signTestToken(t, userId, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
