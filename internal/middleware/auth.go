package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/assignflow/assignment-api/internal/auth"
	"github.com/assignflow/assignment-api/internal/constants"
	apierrors "github.com/assignflow/assignment-api/internal/errors"
	"github.com/assignflow/assignment-api/internal/models"
	"github.com/assignflow/assignment-api/internal/repository"
)

// RequireAuth resolves the caller from the Authorization header and
// stores the full user document in the request context. A missing or
// malformed header, a bad or expired token, a missing subject and an
// unknown username all produce the same 401.
func RequireAuth(jwtSecret []byte, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		claims, ok := auth.DecodeAccessToken(token, jwtSecret)
		if !ok || claims.Subject == "" {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := userRepo.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apierrors.Unauthorized(c, "Could not validate credentials")
			} else {
				apierrors.StorageUnavailable(c)
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireActiveUser rejects callers whose account has been deactivated.
// Must run after RequireAuth.
func RequireActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}
		if !user.Active() {
			apierrors.Forbidden(c, "Inactive user")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
