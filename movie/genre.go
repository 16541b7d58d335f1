package movie

import (
	"sort"
	"strings"
)

type Genre string

const (
	Action      Genre = "Action"
	Adventure   Genre = "Adventure"
	Animation   Genre = "Animation"
	Biography   Genre = "Biography"
	Comedy      Genre = "Comedy"
	Crime       Genre = "Crime"
	Documentary Genre = "Documentary"
	Drama       Genre = "Drama"
	Family      Genre = "Family"
	Fantasy     Genre = "Fantasy"
	History     Genre = "History"
	Horror      Genre = "Horror"
	Music       Genre = "Music"
	Musical     Genre = "Musical"
	Mystery     Genre = "Mystery"
	Noir        Genre = "Noir"
	Romance     Genre = "Romance"
	SciFi       Genre = "SciFi"
	Sport       Genre = "Sport"
	Thriller    Genre = "Thriller"
	War         Genre = "War"
	Western     Genre = "Western"
)

var genresByName = func() map[string]Genre {
	all := []Genre{
		Action, Adventure, Animation, Biography, Comedy, Crime, Documentary, Drama,
		Family, Fantasy, History, Horror, Music, Musical, Mystery, Noir, Romance,
		SciFi, Sport, Thriller, War, Western,
	}
	m := make(map[string]Genre, len(all))
	for _, g := range all {
		m[strings.ToLower(string(g))] = g
	}
	return m
}()

// ParseGenre resolves a genre name, ignoring case and surrounding spaces.
func ParseGenre(name string) (Genre, bool) {
	g, ok := genresByName[strings.ToLower(strings.TrimSpace(name))]
	return g, ok
}

// GenreSet is a set of genres.
type GenreSet map[Genre]struct{}

func NewGenreSet(genres ...Genre) GenreSet {
	s := make(GenreSet, len(genres))
	for _, g := range genres {
		s[g] = struct{}{}
	}
	return s
}

// ParseGenres builds a set from free-text names. Unknown names are dropped and
// duplicates collapse.
func ParseGenres(names []string) GenreSet {
	s := make(GenreSet, len(names))
	for _, name := range names {
		if g, ok := ParseGenre(name); ok {
			s[g] = struct{}{}
		}
	}
	return s
}

func (s GenreSet) Contains(g Genre) bool {
	_, ok := s[g]
	return ok
}

// ContainsAll reports whether s is a superset of other.
func (s GenreSet) ContainsAll(other GenreSet) bool {
	for g := range other {
		if !s.Contains(g) {
			return false
		}
	}
	return true
}

// Sorted returns the genres in name order.
func (s GenreSet) Sorted() []Genre {
	out := make([]Genre, 0, len(s))
	for g := range s {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
