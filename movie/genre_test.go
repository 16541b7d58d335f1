package movie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviecatalog/movie"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  movie.Genre
		ok    bool
	}{
		{name: "exact name", input: "Comedy", want: movie.Comedy, ok: true},
		{name: "lower case", input: "romance", want: movie.Romance, ok: true},
		{name: "mixed case with spaces", input: "  sCiFi ", want: movie.SciFi, ok: true},
		{name: "unknown", input: "spaghetti", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := movie.ParseGenre(tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGenres(t *testing.T) {
	t.Run("should collapse duplicates and drop unknown names", func(t *testing.T) {
		set := movie.ParseGenres([]string{"drama", "Drama", "DRAMA", "war", "nope"})

		assert.Equal(t, []movie.Genre{movie.Drama, movie.War}, set.Sorted())
	})

	t.Run("should return an empty set for no names", func(t *testing.T) {
		assert.Empty(t, movie.ParseGenres(nil))
	})
}

func TestGenreSet_ContainsAll(t *testing.T) {
	godfrey := movie.NewGenreSet(movie.Comedy, movie.Drama, movie.Romance)

	t.Run("superset matches", func(t *testing.T) {
		assert.True(t, godfrey.ContainsAll(movie.NewGenreSet(movie.Comedy, movie.Romance)))
	})

	t.Run("intersection alone does not match", func(t *testing.T) {
		assert.False(t, godfrey.ContainsAll(movie.NewGenreSet(movie.Comedy, movie.Horror)))
	})

	t.Run("empty set is always contained", func(t *testing.T) {
		assert.True(t, godfrey.ContainsAll(movie.GenreSet{}))
	})
}
