package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-manager/internal/service"
)

func (s *Server) index(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.Render(http.StatusOK, "login.html", nil)
	}

	pending, completed, err := s.tasks.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Username":       user.Username,
		"PendingTasks":   pending,
		"CompletedTasks": completed,
	})
}

func (s *Server) register(c echo.Context) error {
	_, err := s.auth.Register(c.Request().Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) login(c echo.Context) error {
	user, err := s.auth.Login(c.Request().Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return err
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) addTask(c echo.Context) error {
	input := service.TaskInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Deadline:    c.FormValue("deadline"),
	}
	if _, err := s.tasks.Create(c.Request().Context(), currentUser(c), input); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) completeTask(c echo.Context) error {
	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		return service.ErrTaskNotFound
	}
	if err := s.tasks.Complete(c.Request().Context(), currentUser(c), taskID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) deleteTask(c echo.Context) error {
	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		return service.ErrTaskNotFound
	}
	if err := s.tasks.Delete(c.Request().Context(), currentUser(c), taskID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func parseTaskID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
