package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/metaquant/engel-landing/internal/models"
	apperrors "github.com/metaquant/engel-landing/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is the fixed, ordered collection of testimonials.
// It is built once at startup and never mutated afterwards, so it can be
// shared by concurrent requests without locking.
type Catalog struct {
	records []models.ReviewRecord
}

// New validates records and returns a catalog holding its own copy of them
func New(records []models.ReviewRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, apperrors.InvalidInputError("catalog", "at least one review is required")
	}

	owned := make([]models.ReviewRecord, len(records))
	copy(owned, records)

	for i := range owned {
		if err := validate.Struct(owned[i]); err != nil {
			return nil, fmt.Errorf("review %d (%q): %w", i, owned[i].Name, apperrors.InvalidInputError("record", err.Error()))
		}
	}

	return &Catalog{records: owned}, nil
}

// Default returns the catalog shipped with the site
func Default() (*Catalog, error) {
	return New(defaultReviews)
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}

// At returns the i-th record by value
func (c *Catalog) At(i int) models.ReviewRecord {
	return c.records[i]
}

// All returns a copy of every record in catalog order
func (c *Catalog) All() []models.ReviewRecord {
	out := make([]models.ReviewRecord, len(c.records))
	copy(out, c.records)
	return out
}
