package models

// ReviewDateLayout is the DD/MM/YYYY display format used for review dates
const ReviewDateLayout = "02/01/2006"

// ReviewRecord is a single testimonial in the static catalog
type ReviewRecord struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	DaysAgo int    `json:"days_ago" validate:"min=0"`
}

// ReviewResponseItem is a catalog record enriched with its display date for one response
type ReviewResponseItem struct {
	ReviewRecord
	Date string `json:"date"`
}
