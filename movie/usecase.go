package movie

import (
	"context"
	"strings"
)

type Service interface {
	Get(ctx context.Context, titleLike string, yearOfRelease *int, genres []string) ([]MovieInfo, error)
	GetTopRated(ctx context.Context, userID *int) ([]MovieInfo, error)
	Put(ctx context.Context, userID, titleID, rating int) (bool, error)
	Ratings(ctx context.Context, titleID int) ([]Rating, error)
}

type Repository interface {
	Search(ctx context.Context, f Filter) ([]RatedMovie, error)
	TopRated(ctx context.Context, userID *int) ([]Movie, error)
	UpsertRating(ctx context.Context, userID, titleID, score int) (bool, error)
	RatingsByTitle(ctx context.Context, titleID int) ([]Rating, error)
}

// Mapper shapes a rated movie for presentation. Implementations must be pure
// and never fail.
type Mapper interface {
	Map(rm RatedMovie) MovieInfo
}

type Usecase struct {
	r      Repository
	mapper Mapper
}

func NewUsecase(r Repository, m Mapper) *Usecase {
	if m == nil {
		m = InfoMapper{}
	}
	return &Usecase{r: r, mapper: m}
}

// Get searches the catalog. At least one of titleLike, yearOfRelease or genres
// must be supplied. Unrecognised genre names are ignored.
func (uc *Usecase) Get(ctx context.Context, titleLike string, yearOfRelease *int, genres []string) ([]MovieInfo, error) {
	blankTitle := strings.TrimSpace(titleLike) == ""
	if blankTitle && yearOfRelease == nil && len(genres) == 0 {
		return nil, ErrInvalidQuery
	}
	if blankTitle {
		titleLike = ""
	}

	matched, err := uc.r.Search(ctx, Filter{
		Title:  titleLike,
		Year:   yearOfRelease,
		Genres: ParseGenres(genres),
	})
	if err != nil {
		return nil, err
	}
	return uc.mapAll(matched), nil
}

func (uc *Usecase) GetTopRated(ctx context.Context, userID *int) ([]MovieInfo, error) {
	movies, err := uc.r.TopRated(ctx, userID)
	if err != nil {
		return nil, err
	}

	rated := make([]RatedMovie, len(movies))
	for i, m := range movies {
		rated[i] = RatedMovie{Movie: m}
	}
	return uc.mapAll(rated), nil
}

// Put records or replaces a user's rating for a title. It returns false when
// the user or the title does not exist.
func (uc *Usecase) Put(ctx context.Context, userID, titleID, rating int) (bool, error) {
	if !ValidRating(rating) {
		return false, ErrInvalidRating
	}
	return uc.r.UpsertRating(ctx, userID, titleID, rating)
}

func (uc *Usecase) Ratings(ctx context.Context, titleID int) ([]Rating, error) {
	return uc.r.RatingsByTitle(ctx, titleID)
}

func (uc *Usecase) mapAll(rated []RatedMovie) []MovieInfo {
	infos := make([]MovieInfo, len(rated))
	for i, rm := range rated {
		infos[i] = uc.mapper.Map(rm)
	}
	return infos
}
