package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyWorkerID = "workerID"
	contextKeyRole     = "role"
)

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	WorkerID string `json:"worker_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// TokenIssuer mints signed tokens for authenticated workers.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token identifying the worker and their role.
func (i TokenIssuer) Issue(workerID kernel.UUID, name, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		WorkerID: workerID.String(),
		Name:     name,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			Subject:   workerID.String(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(i.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(i.secret)
}

// AuthMiddleware validates the bearer token and stores the worker identity
// and role on the request context.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(ctx, "authorization header required")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return unauthorized(ctx, "bearer token required")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid token")
			}

			workerID, err := kernel.UUIDFromString(claims.WorkerID)
			if err != nil {
				return unauthorized(ctx, "invalid token")
			}

			ctx.Set(contextKeyWorkerID, workerID)
			ctx.Set(contextKeyRole, claims.Role)

			return next(ctx)
		}
	}
}

// AdminOnly rejects requests whose token does not carry the admin role.
// It must run after AuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !isAdmin(ctx) {
				return forbidden(ctx, "admin role required")
			}
			return next(ctx)
		}
	}
}

func workerIDFromContext(ctx echo.Context) (kernel.UUID, error) {
	workerID, ok := ctx.Get(contextKeyWorkerID).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing worker identity")
	}
	return workerID, nil
}

func isAdmin(ctx echo.Context) bool {
	role, ok := ctx.Get(contextKeyRole).(string)
	if !ok {
		return false
	}
	parsed, err := worker.RoleFromString(role)
	if err != nil {
		return false
	}
	return parsed.IsAdmin()
}
