package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrRatingOutOfRange = errors.New("rating out of range")

type Review struct {
	ID           string
	CustomerName string
	Text         string
	Rating       int
	CreatedAt    time.Time
}

// RatingOutOfRangeError is returned for ratings outside [MinRating, MaxRating].
type RatingOutOfRangeError struct {
	Rating int
}

func (e *RatingOutOfRangeError) Error() string {
	return fmt.Sprintf("rating %d out of range, must be between %d and %d", e.Rating, MinRating, MaxRating)
}

func (e *RatingOutOfRangeError) Is(target error) bool {
	return target == ErrRatingOutOfRange
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return &RatingOutOfRangeError{Rating: rating}
	}
	return nil
}
