package delivery

import (
	"strings"

	"around-backend/internal/auth/usecase"
	"around-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the context key the middleware stores the verified
// subject id under.
const ContextUserID = "userID"

// AuthMiddleware admits a request only when it carries a verifiable bearer
// token for an existing account, and attaches the subject id for downstream
// handlers. Missing token, failed verification and unknown subject each map
// to their own terminal outcome.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			apperr.Respond(c, apperr.New(apperr.KindNoToken, "authorization required"))
			return
		}

		userID, err := authUsecase.ResolveToken(c.Request.Context(), tokenString)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// extractToken accepts both a bare token and the "Bearer <token>" form, since
// clients in the wild send either.
func extractToken(header string) string {
	if header == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return header
}
