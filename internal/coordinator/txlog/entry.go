package txlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
)

// NewEntry is a convenience constructor that builds an Entry with the command
// ID taken from ctx and detail marshalled to JSON.
//
//	entry := txlog.NewEntry(ctx, txID, txlog.StatusLineAdded, "Coffee", 2, detail, nil)
//	_ = repo.Save(ctx, entry)
func NewEntry(
	ctx context.Context,
	txID string,
	status Status,
	item string,
	quantity int,
	detail map[string]any,
	cause error,
) *Entry {
	detailJSON := "{}"
	if len(detail) > 0 {
		if b, err := json.Marshal(detail); err == nil {
			detailJSON = string(b)
		}
	}

	var errMsg string
	if cause != nil {
		errMsg = cause.Error()
	}

	return &Entry{
		TxID:       txID,
		Status:     status,
		Item:       item,
		Quantity:   quantity,
		Detail:     detailJSON,
		Error:      errMsg,
		CommandID:  telemetry.Value(ctx, telemetry.ContextKeyCommandID),
		RecordedAt: time.Now().UTC(),
	}
}
