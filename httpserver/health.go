package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.handleHealthcheck)
}

// handleHealthcheck godoc
// @Summary Health Check
// @Description Report liveness and whether the catalog is wired
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) handleHealthcheck(c echo.Context) error {
	catalog := "ready"
	if s.MovieService == nil {
		catalog = "unconfigured"
	}
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status":  "OK",
		"catalog": catalog,
	})
}
