package httpserver

type PutRatingRequest struct {
	UserID int `json:"userId" validate:"required,gt=0"`
	Rating int `json:"rating" validate:"rating"`
}

type PutRatingResponse struct {
	UserID  int `json:"userId"`
	TitleID int `json:"titleId"`
	Rating  int `json:"rating"`
}
