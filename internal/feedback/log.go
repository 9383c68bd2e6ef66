package feedback

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/cafe-console/internal/feedback/domain"
)

// Log is the append-only list of customer reviews.
type Log struct {
	reviews []domain.Review
	now     func() time.Time
}

func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Record appends a review. Ratings outside [1,5] are rejected, never clamped.
func (l *Log) Record(customerName, text string, rating int) (domain.Review, error) {
	if err := domain.ValidateRating(rating); err != nil {
		slog.Debug("review rejected", "customer", customerName, "rating", rating)
		return domain.Review{}, err
	}

	r := domain.Review{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		Text:         text,
		Rating:       rating,
		CreatedAt:    l.now().UTC(),
	}
	l.reviews = append(l.reviews, r)
	return r, nil
}

func (l *Log) AllReviews() []domain.Review {
	return append([]domain.Review(nil), l.reviews...)
}

func (l *Log) Len() int { return len(l.reviews) }
