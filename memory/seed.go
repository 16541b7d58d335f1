package memory

import (
	"math/rand"
	"time"

	"moviecatalog/movie"
)

func seedUsers() []movie.User {
	return []movie.User{
		{ID: 1, Username: "farley"},
		{ID: 2, Username: "jakob"},
		{ID: 3, Username: "patootie"},
		{ID: 4, Username: "firebug"},
		{ID: 5, Username: "foxyred"},
		{ID: 6, Username: "dionelso"},
		{ID: 7, Username: "ultalmar"},
		{ID: 8, Username: "acelthes"},
		{ID: 9, Username: "saursimo"},
		{ID: 10, Username: "mariumse"},
		{ID: 11, Username: "nushrono"},
		{ID: 12, Username: "sanguine"},
	}
}

func seedMovies() []movie.Movie {
	entries := []struct {
		title   string
		year    int
		genres  []movie.Genre
		runtime time.Duration
	}{
		{"My Man Godfrey", 1936, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(1, 34)},
		{"It Happened One Night", 1934, []movie.Genre{movie.Comedy, movie.Romance}, hm(1, 45)},
		{"The Apartment", 1960, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(2, 5)},
		{"How to Steal a Million", 1966, []movie.Genre{movie.Comedy, movie.Crime, movie.Romance}, hm(2, 3)},
		{"To Catch a Thief", 1955, []movie.Genre{movie.Mystery, movie.Thriller, movie.Romance}, hm(1, 46)},
		{"It's a Wonderful Life", 1946, []movie.Genre{movie.Drama, movie.Family, movie.Fantasy}, hm(2, 10)},
		{"Mr. Deeds Goes to Town", 1936, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(1, 55)},
		{"Mr. Smith Goes to Washington", 1939, []movie.Genre{movie.Comedy, movie.Drama}, hm(2, 9)},
		{"The Shop Around the Corner", 1940, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(1, 39)},
		{"Doctor Zhivago", 1965, []movie.Genre{movie.Drama, movie.Romance, movie.War}, hm(3, 17)},
		{"Lawrence of Arabia", 1962, []movie.Genre{movie.Adventure, movie.Biography, movie.Drama}, hm(3, 48)},
		{"You Can't Take It with You", 1938, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(2, 6)},
		{"The Awful Truth", 1937, []movie.Genre{movie.Comedy, movie.Romance}, hm(1, 30)},
		{"Breakfast At Tiffany's", 1961, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(1, 55)},
		{"The Artist", 2011, []movie.Genre{movie.Comedy, movie.Drama, movie.Romance}, hm(1, 40)},
		{"Murder on the Orient Express", 1974, []movie.Genre{movie.Crime, movie.Drama, movie.Mystery}, hm(2, 8)},
		{"The Treasure of the Sierra Madre", 1948, []movie.Genre{movie.Adventure, movie.Drama}, hm(2, 6)},
		{"The Big Sleep", 1946, []movie.Genre{movie.Noir, movie.Crime, movie.Mystery}, hm(1, 54)},
		{"Casablanca", 1942, []movie.Genre{movie.Drama, movie.War, movie.Romance}, hm(1, 42)},
	}

	movies := make([]movie.Movie, len(entries))
	for i, e := range entries {
		movies[i] = movie.Movie{
			ID:          i + 1,
			Title:       e.title,
			ReleaseYear: e.year,
			Genres:      e.genres,
			RunningTime: e.runtime,
		}
	}
	return movies
}

// seedRatings gives every user one rating for every movie.
func seedRatings(users []movie.User, movies []movie.Movie, rnd *rand.Rand, nextID func() int64) []movie.Rating {
	ratings := make([]movie.Rating, 0, len(users)*len(movies))
	for _, m := range movies {
		for _, u := range users {
			ratings = append(ratings, movie.Rating{
				ID:      nextID(),
				UserID:  u.ID,
				TitleID: m.ID,
				Score:   movie.MinRating + rnd.Intn(movie.MaxRating-movie.MinRating+1),
			})
		}
	}
	return ratings
}

func hm(hours, minutes int) time.Duration {
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}
