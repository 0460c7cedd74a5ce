package service

import "context"

// NotificationSink receives user-facing notifications. Delivery is
// best-effort and decoupled from the ledger: implementations must never fail
// the caller, and the ledger mutation is already committed by the time
// Notify runs.
type NotificationSink interface {
	Notify(ctx context.Context, userID int64, title, message, kind string)
}
