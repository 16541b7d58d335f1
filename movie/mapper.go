package movie

import (
	"fmt"
	"time"
)

// MovieInfo is the outward-facing view of a movie.
type MovieInfo struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	ReleaseYear   int      `json:"releaseYear"`
	RunningTime   string   `json:"runningTime"`
	Genres        []string `json:"genres"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	RatingCount   int      `json:"ratingCount"`
}

// InfoMapper is the default Mapper. Genres are listed in name order.
type InfoMapper struct{}

func (InfoMapper) Map(rm RatedMovie) MovieInfo {
	sorted := NewGenreSet(rm.Movie.Genres...).Sorted()
	genres := make([]string, len(sorted))
	for i, g := range sorted {
		genres[i] = string(g)
	}

	info := MovieInfo{
		ID:          rm.Movie.ID,
		Title:       rm.Movie.Title,
		ReleaseYear: rm.Movie.ReleaseYear,
		RunningTime: formatRunningTime(rm.Movie.RunningTime),
		Genres:      genres,
		RatingCount: len(rm.Ratings),
	}
	if len(rm.Ratings) > 0 {
		avg := averageScore(rm.Ratings)
		info.AverageRating = &avg
	}
	return info
}

func averageScore(ratings []Rating) float64 {
	total := 0
	for _, r := range ratings {
		total += r.Score
	}
	return float64(total) / float64(len(ratings))
}

// formatRunningTime renders a duration as "1h34m".
func formatRunningTime(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d - h*time.Hour) / time.Minute
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
