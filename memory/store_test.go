package memory_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"moviecatalog/memory"
	"moviecatalog/movie"
)

func intPtr(v int) *int { return &v }

func newStore(t *testing.T, opts ...memory.Option) *memory.Store {
	t.Helper()
	s, err := memory.New(append([]memory.Option{memory.WithSeed(42)}, opts...)...)
	require.NoError(t, err)
	return s
}

func ids(rated []movie.RatedMovie) []int {
	out := make([]int, len(rated))
	for i, rm := range rated {
		out[i] = rm.Movie.ID
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("should seed one rating per movie and user", func(t *testing.T) {
		s := newStore(t)

		all, err := s.Search(context.Background(), movie.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 19)

		ratings, err := s.RatingsSnapshot(context.Background())
		require.NoError(t, err)
		assert.Len(t, ratings, 19*12)

		seen := make(map[[2]int]bool)
		for _, r := range ratings {
			key := [2]int{r.UserID, r.TitleID}
			assert.False(t, seen[key], "duplicate rating for %v", key)
			seen[key] = true
			assert.True(t, movie.ValidRating(r.Score))
		}
	})

	t.Run("should reproduce scores for the same seed", func(t *testing.T) {
		a, err := newStore(t).RatingsSnapshot(context.Background())
		require.NoError(t, err)
		b, err := newStore(t).RatingsSnapshot(context.Background())
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(a, b))
	})

	t.Run("should reject invalid options", func(t *testing.T) {
		_, err := memory.New(memory.WithTopCount(0))
		assert.Error(t, err)

		_, err = memory.New(memory.WithLogger(nil))
		assert.Error(t, err)

		_, err = memory.New(memory.WithRatings(movie.Rating{UserID: 1, TitleID: 1, Score: 6}))
		assert.Error(t, err)
	})
}

func TestStore_Search(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter movie.Filter
		want   []int
	}{
		{name: "year only", filter: movie.Filter{Year: intPtr(1936)}, want: []int{1, 7}},
		{name: "year shared by two genres", filter: movie.Filter{Year: intPtr(1946)}, want: []int{6, 18}},
		{name: "title is case-insensitive", filter: movie.Filter{Title: "CASABLANCA"}, want: []int{19}},
		{name: "title substring", filter: movie.Filter{Title: "goes to"}, want: []int{7, 8}},
		{name: "title keeps trailing spaces", filter: movie.Filter{Title: "Godfrey "}, want: []int{}},
		{name: "inner spaces still match", filter: movie.Filter{Title: "Man "}, want: []int{1}},
		{name: "blank title is ignored", filter: movie.Filter{Title: "  ", Year: intPtr(1936)}, want: []int{1, 7}},
		{
			name:   "genres are a superset test",
			filter: movie.Filter{Genres: movie.NewGenreSet(movie.Noir, movie.Crime)},
			want:   []int{18},
		},
		{
			name:   "all filters combine",
			filter: movie.Filter{Title: "it", Year: intPtr(1934), Genres: movie.NewGenreSet(movie.Romance)},
			want:   []int{2},
		},
		{
			name:   "no movie has every genre",
			filter: movie.Filter{Genres: movie.NewGenreSet(movie.Comedy, movie.Horror)},
			want:   []int{},
		},
		{name: "unknown year", filter: movie.Filter{Year: intPtr(1900)}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("should attach each movie's ratings", func(t *testing.T) {
		got, err := s.Search(ctx, movie.Filter{Title: "My Man Godfrey"})
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Len(t, got[0].Ratings, 12)
		for _, r := range got[0].Ratings {
			assert.Equal(t, 1, r.TitleID)
		}
	})

	t.Run("should match every comedy romance", func(t *testing.T) {
		got, err := s.Search(ctx, movie.Filter{Genres: movie.NewGenreSet(movie.Comedy, movie.Romance)})
		require.NoError(t, err)

		assert.Contains(t, ids(got), 1)
		for _, rm := range got {
			assert.True(t, movie.NewGenreSet(rm.Movie.Genres...).ContainsAll(movie.NewGenreSet(movie.Comedy, movie.Romance)))
		}
	})
}

func TestStore_TopRated(t *testing.T) {
	ctx := context.Background()

	t.Run("should return at most five of the seeded catalog", func(t *testing.T) {
		s := newStore(t)

		top, err := s.TopRated(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, top, 5)
		for _, m := range top {
			rated, err := s.RatingsByTitle(ctx, m.ID)
			require.NoError(t, err)
			assert.NotEmpty(t, rated)
		}
	})

	preset := memory.WithRatings(
		movie.Rating{UserID: 1, TitleID: 1, Score: 3},
		movie.Rating{UserID: 1, TitleID: 2, Score: 5},
		movie.Rating{UserID: 1, TitleID: 3, Score: 5},
		movie.Rating{UserID: 2, TitleID: 1, Score: 5},
		movie.Rating{UserID: 2, TitleID: 4, Score: 2},
		movie.Rating{UserID: 2, TitleID: 2, Score: 1},
	)

	tests := []struct {
		name   string
		userID *int
		opts   []memory.Option
		want   []int
	}{
		// means: 1 => 4, 2 => 3, 3 => 5, 4 => 2
		{name: "highest mean first", want: []int{3, 1, 2, 4}},
		{name: "limited by top count", opts: []memory.Option{memory.WithTopCount(2)}, want: []int{3, 1}},
		{name: "ties broken by id", userID: intPtr(1), want: []int{2, 3, 1}},
		{name: "only the user's ratings", userID: intPtr(2), want: []int{1, 4, 2}},
		{name: "user without ratings", userID: intPtr(12), want: []int{}},
		{name: "unknown user", userID: intPtr(999), want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, append([]memory.Option{preset}, tt.opts...)...)

			top, err := s.TopRated(ctx, tt.userID)
			require.NoError(t, err)

			got := make([]int, len(top))
			for i, m := range top {
				got[i] = m.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should be empty without ratings", func(t *testing.T) {
		s := newStore(t, memory.WithRatings())

		top, err := s.TopRated(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, top)
	})
}

func TestStore_UpsertRating(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace the pair's rating", func(t *testing.T) {
		s := newStore(t)

		ok, err := s.UpsertRating(ctx, 3, 5, 4)
		require.NoError(t, err)
		assert.True(t, ok)

		ratings, err := s.RatingsByTitle(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, ratings, 12)

		var mine []movie.Rating
		for _, r := range ratings {
			if r.UserID == 3 {
				mine = append(mine, r)
			}
		}
		require.Len(t, mine, 1)
		assert.Equal(t, 4, mine[0].Score)
	})

	t.Run("should insert a new pair", func(t *testing.T) {
		s := newStore(t, memory.WithRatings())

		ok, err := s.UpsertRating(ctx, 1, 19, 5)
		require.NoError(t, err)
		assert.True(t, ok)

		ratings, err := s.RatingsByTitle(ctx, 19)
		require.NoError(t, err)
		require.Len(t, ratings, 1)
		assert.Equal(t, 1, ratings[0].UserID)
		assert.Equal(t, 5, ratings[0].Score)
	})

	t.Run("should give each upsert a fresh identity", func(t *testing.T) {
		s := newStore(t, memory.WithRatings())

		_, err := s.UpsertRating(ctx, 1, 1, 2)
		require.NoError(t, err)
		first, err := s.RatingsByTitle(ctx, 1)
		require.NoError(t, err)

		_, err = s.UpsertRating(ctx, 1, 1, 3)
		require.NoError(t, err)
		second, err := s.RatingsByTitle(ctx, 1)
		require.NoError(t, err)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Greater(t, second[0].ID, first[0].ID)
	})

	t.Run("should leave state unchanged for unknown ids", func(t *testing.T) {
		s := newStore(t)
		before, err := s.RatingsSnapshot(ctx)
		require.NoError(t, err)

		ok, err := s.UpsertRating(ctx, 999, 1, 3)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.UpsertRating(ctx, 1, 999, 3)
		require.NoError(t, err)
		assert.False(t, ok)

		after, err := s.RatingsSnapshot(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("ratings changed (-before +after):\n%s", diff)
		}
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		s := newStore(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		ok, err := s.UpsertRating(cctx, 1, 1, 3)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})

	t.Run("should keep one rating under concurrent upserts of a pair", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		s := newStore(t, memory.WithLogger(zap.New(core).Sugar()))

		var g errgroup.Group
		for i := 0; i < 64; i++ {
			score := i%movie.MaxRating + 1
			g.Go(func() error {
				_, err := s.UpsertRating(ctx, 7, 11, score)
				return err
			})
		}
		require.NoError(t, g.Wait())

		ratings, err := s.RatingsByTitle(ctx, 11)
		require.NoError(t, err)

		var mine []movie.Rating
		for _, r := range ratings {
			if r.UserID == 7 {
				mine = append(mine, r)
			}
		}
		require.Len(t, mine, 1)

		upserts := logs.FilterMessage("rating upserted").All()
		require.Len(t, upserts, 64)
		last := upserts[len(upserts)-1].ContextMap()
		assert.EqualValues(t, last["score"], mine[0].Score)
		assert.EqualValues(t, last["rating_id"], mine[0].ID)
	})

	t.Run("should not lose upserts across pairs", func(t *testing.T) {
		s := newStore(t, memory.WithRatings())

		var g errgroup.Group
		for u := 1; u <= 12; u++ {
			for m := 1; m <= 19; m++ {
				u, m := u, m
				g.Go(func() error {
					_, err := s.UpsertRating(ctx, u, m, 3)
					return err
				})
			}
		}
		require.NoError(t, g.Wait())

		ratings, err := s.RatingsSnapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, ratings, 12*19)
	})
}
