package shell

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	fbdomain "github.com/jcmexdev/cafe-console/internal/feedback/domain"
)

// leaveReview re-prompts for the rating until it is in range. End of input
// discards the review.
func (s *Shell) leaveReview(ctx context.Context) {
	name, ok := s.prompt("\nEnter your name: ")
	if !ok {
		return
	}
	text, ok := s.prompt("Write your review: ")
	if !ok {
		return
	}

	msg := "Rate us (1 to 5): "
	for {
		raw, ok := s.prompt(msg)
		if !ok {
			s.printf("\nReview discarded.\n")
			return
		}
		msg = "Invalid rating. Please rate between 1 and 5: "

		rating, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		_, err = s.cafe.LeaveReview(ctx, name, text, rating)
		if errors.Is(err, fbdomain.ErrRatingOutOfRange) {
			continue
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to record review", "error", err)
			s.printf("Could not record the review: %v\n", err)
			return
		}

		s.printf("Thank you for your feedback, %s!\n", name)
		return
	}
}
