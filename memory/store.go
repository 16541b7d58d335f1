package memory

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"moviecatalog/movie"
)

const defaultTopCount = 5

// Store is an in-memory movie.Repository seeded once at construction. Users and
// movies never change. Ratings are published as an immutable snapshot so reads
// take no lock; writers serialize on mu and swap in a new snapshot.
type Store struct {
	users      []movie.User
	usersByID  map[int]movie.User
	movies     []movie.Movie
	moviesByID map[int]movie.Movie

	mu      sync.Mutex
	ratings atomic.Pointer[[]movie.Rating]
	lastID  atomic.Int64

	topCount      int
	logger        *zap.SugaredLogger
	rnd           *rand.Rand
	initial       []movie.Rating
	presetRatings bool
}

func New(opts ...Option) (*Store, error) {
	s := &Store{
		users:    seedUsers(),
		movies:   seedMovies(),
		topCount: defaultTopCount,
		logger:   zap.NewNop().Sugar(),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, fn := range opts {
		if err := fn(s); err != nil {
			return nil, err
		}
	}

	s.usersByID = make(map[int]movie.User, len(s.users))
	for _, u := range s.users {
		s.usersByID[u.ID] = u
	}
	s.moviesByID = make(map[int]movie.Movie, len(s.movies))
	for _, m := range s.movies {
		s.moviesByID[m.ID] = m
	}

	var ratings []movie.Rating
	if s.presetRatings {
		ratings = make([]movie.Rating, len(s.initial))
		for i, r := range s.initial {
			r.ID = s.nextID()
			ratings[i] = r
		}
		s.initial = nil
	} else {
		ratings = seedRatings(s.users, s.movies, s.rnd, s.nextID)
	}
	s.ratings.Store(&ratings)

	s.logger.Infow("catalog seeded",
		"users", len(s.users),
		"movies", len(s.movies),
		"ratings", len(ratings),
	)
	return s, nil
}

// Search returns every movie matching all supplied filters, paired with its
// ratings. An empty filter matches the whole catalog.
func (s *Store) Search(ctx context.Context, f movie.Filter) ([]movie.RatedMovie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ratings := s.snapshot()
	// The title is matched as given; only a blank title is treated as absent.
	title := strings.ToLower(f.Title)
	if strings.TrimSpace(title) == "" {
		title = ""
	}

	result := make([]movie.RatedMovie, 0)
	for _, m := range s.movies {
		if title != "" && !strings.Contains(strings.ToLower(m.Title), title) {
			continue
		}
		if f.Year != nil && m.ReleaseYear != *f.Year {
			continue
		}
		if len(f.Genres) > 0 && !movie.NewGenreSet(m.Genres...).ContainsAll(f.Genres) {
			continue
		}
		result = append(result, movie.RatedMovie{
			Movie:   m,
			Ratings: ratingsFor(ratings, m.ID),
		})
	}
	return result, nil
}

type titleScore struct {
	titleID int
	total   int
	count   int
}

// less orders by mean score descending, then by title id ascending. Means are
// compared by cross-multiplication to keep ties exact.
func (a titleScore) less(b titleScore) bool {
	lhs, rhs := a.total*b.count, b.total*a.count
	if lhs != rhs {
		return lhs > rhs
	}
	return a.titleID < b.titleID
}

// TopRated ranks movies by their mean score, highest first, and returns at most
// the configured top count. When userID is set only that user's ratings count
// and movies the user never rated are left out.
func (s *Store) TopRated(ctx context.Context, userID *int) ([]movie.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byTitle := make(map[int]*titleScore)
	for _, r := range s.snapshot() {
		if userID != nil && r.UserID != *userID {
			continue
		}
		ts, ok := byTitle[r.TitleID]
		if !ok {
			ts = &titleScore{titleID: r.TitleID}
			byTitle[r.TitleID] = ts
		}
		ts.total += r.Score
		ts.count++
	}

	scores := make([]titleScore, 0, len(byTitle))
	for _, ts := range byTitle {
		scores = append(scores, *ts)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].less(scores[j]) })
	if len(scores) > s.topCount {
		scores = scores[:s.topCount]
	}

	movies := make([]movie.Movie, 0, len(scores))
	for _, ts := range scores {
		if m, ok := s.moviesByID[ts.titleID]; ok {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// UpsertRating replaces any rating userID gave titleID with a new one. It
// returns false, leaving state untouched, when either id is unknown. All
// upserts are serialized; cancellation is only observed before the lock.
func (s *Store) UpsertRating(ctx context.Context, userID, titleID, score int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, ok := s.usersByID[userID]; !ok {
		return false, nil
	}
	if _, ok := s.moviesByID[titleID]; !ok {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	next := make([]movie.Rating, 0, len(current)+1)
	replaced := 0
	for _, r := range current {
		if r.UserID == userID && r.TitleID == titleID {
			replaced++
			continue
		}
		next = append(next, r)
	}
	rating := movie.Rating{
		ID:      s.nextID(),
		UserID:  userID,
		TitleID: titleID,
		Score:   score,
	}
	next = append(next, rating)
	s.ratings.Store(&next)

	s.logger.Debugw("rating upserted",
		"rating_id", rating.ID,
		"user_id", userID,
		"title_id", titleID,
		"score", score,
		"replaced", replaced,
	)
	return true, nil
}

func (s *Store) RatingsByTitle(ctx context.Context, titleID int) ([]movie.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ratingsFor(s.snapshot(), titleID), nil
}

// RatingsSnapshot returns a copy of the whole ratings collection as of one
// instant.
func (s *Store) RatingsSnapshot(ctx context.Context) ([]movie.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]movie.Rating{}, s.snapshot()...), nil
}

// snapshot must be treated as read-only.
func (s *Store) snapshot() []movie.Rating {
	return *s.ratings.Load()
}

// nextID hands out rating identities from a monotonic counter.
func (s *Store) nextID() int64 {
	return s.lastID.Add(1)
}

func ratingsFor(ratings []movie.Rating, titleID int) []movie.Rating {
	out := make([]movie.Rating, 0)
	for _, r := range ratings {
		if r.TitleID == titleID {
			out = append(out, r)
		}
	}
	return out
}
