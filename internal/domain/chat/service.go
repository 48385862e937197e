package chat

import (
	"context"
	"time"
)

// ChatService answers natural-language questions about the caller's own
// attendance by detecting an intent and rolling up their records. Action
// intents ("check in", "check out") run the regular attendance flow on
// the caller's behalf.
type ChatService interface {
	Query(ctx context.Context, employeeID string, req QueryRequest, now time.Time) (QueryResponse, error)
}
