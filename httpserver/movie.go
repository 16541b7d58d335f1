package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleSearchMovies)
	g.GET("/movies/top-rated", s.handleTopRatedMovies)
	g.GET("/movies/:titleId/ratings", s.handleListRatings)
	g.PUT("/movies/:titleId/ratings", s.handlePutRating)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Search movies by title substring, release year and genres
// @Tags movies
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param year query int false "Release year"
// @Param genre query []string false "Genre names, repeated or comma separated"
// @Success 200 {array} movie.MovieInfo
// @Failure 400 {object} APIResponse
// @Router /api/movies [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	year, err := optionalInt(c.QueryParam("year"), "year")
	if err != nil {
		return err
	}

	results, err := s.MovieService.Get(
		c.Request().Context(),
		c.QueryParam("title"),
		year,
		genreParams(c.QueryParams()["genre"]),
	)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, results)
}

// handleTopRatedMovies godoc
// @Summary Top Rated Movies
// @Description Highest rated titles, optionally by a single user's ratings
// @Tags movies
// @Produce json
// @Param userId query int false "Only count ratings from this user"
// @Success 200 {array} movie.MovieInfo
// @Router /api/movies/top-rated [get]
func (s *Server) handleTopRatedMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	userID, err := optionalInt(c.QueryParam("userId"), "userId")
	if err != nil {
		return err
	}

	results, err := s.MovieService.GetTopRated(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, results)
}

func (s *Server) handleListRatings(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	titleID, err := strconv.Atoi(c.Param("titleId"))
	if err != nil {
		return errs.Errorf(errs.EINVALID, "invalid titleId")
	}

	ratings, err := s.MovieService.Ratings(c.Request().Context(), titleID)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, ratings)
}

// handlePutRating godoc
// @Summary Rate Movie
// @Description Record or replace a user's rating for a title
// @Tags movies
// @Accept json
// @Produce json
// @Param titleId path int true "Movie id"
// @Param rating body PutRatingRequest true "Rating"
// @Success 200 {object} PutRatingResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{titleId}/ratings [put]
func (s *Server) handlePutRating(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	titleID, err := strconv.Atoi(c.Param("titleId"))
	if err != nil {
		return errs.Errorf(errs.EINVALID, "invalid titleId")
	}

	var req PutRatingRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ok, err := s.MovieService.Put(c.Request().Context(), req.UserID, titleID, req.Rating)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Errorf(errs.ENOTFOUND, "user %d or title %d not found", req.UserID, titleID)
	}

	return writeSuccess(c, http.StatusOK, PutRatingResponse{
		UserID:  req.UserID,
		TitleID: titleID,
		Rating:  req.Rating,
	})
}

func optionalInt(raw, name string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errs.Errorf(errs.EINVALID, "invalid %s", name)
	}
	return &v, nil
}

// genreParams accepts both ?genre=a&genre=b and ?genre=a,b.
func genreParams(values []string) []string {
	var genres []string
	for _, v := range values {
		for _, g := range strings.Split(v, ",") {
			if g = strings.TrimSpace(g); g != "" {
				genres = append(genres, g)
			}
		}
	}
	return genres
}
