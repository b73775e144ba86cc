package http

import (
	"net/http"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"

	"github.com/labstack/echo/v4"
)

// Headers set by the authenticating gateway in front of the service.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

const actorKey = "actor"

// Actor is the authenticated caller. The service trusts it as given.
type Actor struct {
	ID   kernel.UUID
	Role provider.Role
}

// Identity reads the actor headers. Requests without X-Actor-ID pass through
// anonymously; a malformed id or role is rejected.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Request().Header.Get(HeaderActorID)
			if rawID == "" {
				return next(c)
			}

			id, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderActorID + " header",
				})
			}

			actor := Actor{ID: id}
			if rawRole := c.Request().Header.Get(HeaderActorRole); rawRole != "" {
				role, roleErr := provider.ParseRole(rawRole)
				if roleErr != nil {
					return c.JSON(http.StatusBadRequest, ErrorResponse{
						Code:    http.StatusBadRequest,
						Message: "Invalid " + HeaderActorRole + " header",
					})
				}
				actor.Role = role
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by Identity.
func ActorFrom(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorKey).(Actor)
	return actor, ok
}
