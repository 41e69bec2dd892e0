package middleware

import (
	"net/http"
	"strings"

	"blogr/dao"
	"blogr/internal/auth"
	"blogr/model"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// CurrentUser resolves the session before every request. It parses the
// bearer token if one is present, skips blacklisted tokens and loads
// the full user row into the request context. It never aborts: public
// handlers simply see no user.
func CurrentUser(session *auth.SessionManager, users *dao.UserDAO) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 检查 token 是否在黑名单
		if in, _ := session.IsInvalidated(token); in {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireLogin guards handlers that need an authenticated user. It
// short-circuits with 401 when CurrentUser resolved nobody.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFrom(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFrom returns the user resolved for this request, if any.
func UserFrom(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
