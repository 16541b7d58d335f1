package movie

import (
	"time"

	"moviecatalog/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidQuery  = errs.Errorf(errs.EINVALID, "query needs to include at least one search term")
	ErrInvalidRating = errs.Errorf(errs.EINVALID, "rating must be between %d and %d (inclusive)", MinRating, MaxRating)
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Movie struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	ReleaseYear int           `json:"releaseYear"`
	Genres      []Genre       `json:"genres"`
	RunningTime time.Duration `json:"runningTime"`
}

// Rating is a single user's score for a movie. At most one rating exists per
// (UserID, TitleID) pair.
type Rating struct {
	ID      int64 `json:"id"`
	UserID  int   `json:"userId"`
	TitleID int   `json:"titleId"`
	Score   int   `json:"score"`
}

// RatedMovie pairs a movie with the ratings that reference it. It is built on
// read and never stored.
type RatedMovie struct {
	Movie   Movie
	Ratings []Rating
}

// Filter narrows a catalog search. Zero values mean "not supplied": an empty
// Title, a nil Year and an empty Genres set.
type Filter struct {
	Title  string
	Year   *int
	Genres GenreSet
}

func ValidRating(score int) bool {
	return score >= MinRating && score <= MaxRating
}
