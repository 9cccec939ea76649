package server

import (
	"github.com/labstack/echo/v4"

	"task-manager/internal/model"
	"task-manager/internal/service"
)

// currentUserKey stores the resolved *model.User on the request context.
const currentUserKey = "currentUser"

// resolveUser turns the session cookie into a user. Anything short of a
// valid token for an existing user resolves to anonymous, never an error.
func (s *Server) resolveUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return next(c)
		}
		userID, ok := s.sessions.Parse(cookie.Value)
		if !ok {
			return next(c)
		}
		user, err := s.users.FindByID(c.Request().Context(), userID)
		if err != nil {
			// Token references an unknown user; treat as anonymous.
			return next(c)
		}
		c.Set(currentUserKey, user)
		return next(c)
	}
}

// requireUser guards the routes that only make sense for a logged-in user.
func (s *Server) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			return service.ErrUnauthenticated
		}
		return next(c)
	}
}

func currentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}
