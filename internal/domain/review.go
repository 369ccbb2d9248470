package domain

// NewReview holds the attributes required to create a review.
// ReviewDate is optional and defaults to the time of insertion.
type NewReview struct {
	GameID     int64    `json:"gameId"     validate:"required,gt=0"`
	Reviewer   string   `json:"reviewer"   validate:"required"`
	Score      *float64 `json:"score"      validate:"required,gte=0,lte=5"`
	ReviewText string   `json:"reviewText" validate:"required"`
	ReviewDate *string  `json:"reviewDate" validate:"omitempty,calendardate"`
}

// ReviewPatch holds the attributes of a partial review update.
type ReviewPatch struct {
	GameID     *int64   `json:"gameId"     validate:"omitempty,gt=0"`
	Reviewer   *string  `json:"reviewer"   validate:"omitempty,min=1"`
	Score      *float64 `json:"score"      validate:"omitempty,gte=0,lte=5"`
	ReviewText *string  `json:"reviewText" validate:"omitempty,min=1"`
	ReviewDate *string  `json:"reviewDate" validate:"omitempty,calendardate"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ReviewPatch) IsEmpty() bool {
	return p.GameID == nil && p.Reviewer == nil && p.Score == nil &&
		p.ReviewText == nil && p.ReviewDate == nil
}
