package video

import "strings"

// Rating is the closed set of content-rating classifications a video can
// carry.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingFree  Rating = "L"
	RatingAge10 Rating = "10"
	RatingAge12 Rating = "12"
	RatingAge14 Rating = "14"
	RatingAge16 Rating = "16"
	RatingAge18 Rating = "18"
)

var ratings = []Rating{
	RatingER,
	RatingFree,
	RatingAge10,
	RatingAge12,
	RatingAge14,
	RatingAge16,
	RatingAge18,
}

// ParseRating resolves an external label into a Rating, case-insensitively.
// Unknown labels report ok=false; callers treat that the same as an absent
// rating.
func ParseRating(value string) (Rating, bool) {
	for _, r := range ratings {
		if strings.EqualFold(string(r), value) {
			return r, true
		}
	}
	return "", false
}

// String returns the external label of the rating.
func (r Rating) String() string {
	return string(r)
}
