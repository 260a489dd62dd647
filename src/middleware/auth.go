package middleware

import (
	"errors"
	"net/http"

	"github.com/BiblioTrack/BiblioTrack-Backend/src/apperrors"
	"github.com/BiblioTrack/BiblioTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenCookie is the cookie set on login and read on every
// protected route.
const AccessTokenCookie = "access_token"

// AuthMiddleware validates the access-token cookie. The token must be
// well-formed, signed with secretKey, unexpired, and reference a user
// that still exists.
func AuthMiddleware(secretKey string, userService *services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the access token cookie
		tokenString, err := ctx.Cookie(AccessTokenCookie)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Access token cookie is required"})
			ctx.Abort()
			return
		}

		// Verifies the JWT token
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			ctx.Abort()
			return
		}

		userId, ok := claims["user_id"].(float64)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		// The token subject must still exist
		if _, err := userService.GetUserByID(int(userId)); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			ctx.Abort()
			return
		}

		// Sets the authenticated user ID in the context
		ctx.Set("userId", int(userId))
		ctx.Next()
	}
}
