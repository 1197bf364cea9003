package models

import "time"

// MaterialCategory enumerates the material classes a test covers.
type MaterialCategory string

const (
	MaterialCategoryConcrete MaterialCategory = "concrete"
	MaterialCategorySoil     MaterialCategory = "soil"
	MaterialCategoryAsphalt  MaterialCategory = "asphalt"
)

// MaterialTest is a reusable test specification template. It is not
// owned by any project; results reference it by id.
type MaterialTest struct {
	ID            string           `db:"id" json:"id"`
	Name          string           `db:"name" json:"name"`
	Category      MaterialCategory `db:"category" json:"category"`
	Specification string           `db:"specification" json:"specification"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updatedAt"`
}

// MaterialTestUpdate carries a partial update; nil fields are left
// unchanged. A category change never touches existing results.
type MaterialTestUpdate struct {
	Name          *string           `json:"name,omitempty"`
	Category      *MaterialCategory `json:"category,omitempty"`
	Specification *string           `json:"specification,omitempty"`
}
