package http

import (
	"errors"
	"net/http"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const ctxActorKey = "actor"

var errUnauthenticated = errors.New("not authorized, token failed")

// Authenticator resolves a bearer token to a known user. Tokens are HS256 JWTs whose
// "sub" claim is the user id; role and contact details come from the directory.
type Authenticator struct {
	secret    []byte
	directory ports.UserDirectory
}

// NewAuthenticator verifies HS256 bearer tokens signed with secret and resolves
// their subject through directory.
func NewAuthenticator(secret string, directory ports.UserDirectory) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if directory == nil {
		return nil, errs.NewValueIsRequiredError("user directory")
	}
	return &Authenticator{secret: []byte(secret), directory: directory}, nil
}

func (a *Authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
		}

		id, err := a.subject(strings.TrimSpace(parts[1]))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, errUnauthenticated.Error())
		}

		u, err := a.directory.Get(c.Request().Context(), id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, errUnauthenticated.Error())
		}
		if err != nil {
			return err
		}

		c.Set(ctxActorKey, u.Actor())
		return next(c)
	}
}

func (a *Authenticator) subject(raw string) (kernel.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return kernel.UUID{}, errUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.UUID{}, errUnauthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return kernel.UUID{}, errUnauthenticated
	}

	return kernel.UUIDFromString(sub)
}

// RequireAdmin rejects callers without the administrator role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !actorFrom(c).IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not authorized as an admin")
		}
		return next(c)
	}
}

func actorFrom(c echo.Context) kernel.Actor {
	actor, _ := c.Get(ctxActorKey).(kernel.Actor)
	return actor
}
