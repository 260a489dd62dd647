package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID so log lines of one request
// can be correlated. An ID supplied by the caller is kept.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestId := ctx.GetHeader(RequestIDHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		ctx.Set("requestId", requestId)
		ctx.Writer.Header().Set(RequestIDHeader, requestId)
		ctx.Next()
	}
}
