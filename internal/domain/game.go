package domain

// NewGame holds the attributes required to create a game.
// Score is optional; a game without reviews has no score.
type NewGame struct {
	DeveloperID int64    `json:"developerId" validate:"required,gt=0"`
	Name        string   `json:"name"        validate:"required"`
	Score       *float64 `json:"score"       validate:"omitempty,gte=0,lte=5"`
	ReleaseDate string   `json:"releaseDate" validate:"required,calendardate"`
}

// GamePatch holds the attributes of a partial game update.
// Score uses NullableFloat so that an explicit null clears the stored score.
type GamePatch struct {
	DeveloperID *int64        `json:"developerId" validate:"omitempty,gt=0"`
	Name        *string       `json:"name"        validate:"omitempty,min=1"`
	Score       NullableFloat `json:"score"       validate:"omitempty,gte=0,lte=5"`
	ReleaseDate *string       `json:"releaseDate" validate:"omitempty,calendardate"`
}

// IsEmpty reports whether the patch changes nothing.
func (p GamePatch) IsEmpty() bool {
	return p.DeveloperID == nil && p.Name == nil && !p.Score.Set && p.ReleaseDate == nil
}
