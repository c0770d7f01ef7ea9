package middleware

import (
	"net/http"
	"os"
	"strings"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxActorID   = "actorID"
	ctxActorRole = "actorRole"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// RequireAuth validates the bearer token and stores the actor's identity
// and role on the request context. Tokens are HMAC-signed with claims
// "sub" and "role".
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || role == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxActorID, sub)
		c.Set(ctxActorRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. It assumes RequireAuth ran.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxActorRole) != string(role) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFromContext rebuilds the authenticated actor set by RequireAuth.
func ActorFromContext(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:   c.GetString(ctxActorID),
		Role: entities.Role(c.GetString(ctxActorRole)),
	}
}
