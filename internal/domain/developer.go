package domain

// NewDeveloper holds the attributes required to create a developer.
type NewDeveloper struct {
	Name    string `json:"name"    validate:"required"`
	Website string `json:"website" validate:"required"`
}

// DeveloperPatch holds the attributes of a partial developer update.
// Nil fields are left untouched.
type DeveloperPatch struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	Website *string `json:"website" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DeveloperPatch) IsEmpty() bool {
	return p.Name == nil && p.Website == nil
}
