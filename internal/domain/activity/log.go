package activity

import (
	"context"

	"github.com/ashobox/backoffice/internal/domain/shared"
)

// User is the actor embedded in an activity log entry.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Log is one append-only audit entry. Entries are written by the
// marketplace when staff act; this side only reads and searches them.
type Log struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  int64  `json:"entityId"`
	Details   string `json:"details"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	CreatedAt string `json:"createdAt"`
	User      User   `json:"user"`
}

// LogSource fetches the audit trail from the marketplace.
type LogSource interface {
	FetchActivityLogs(ctx context.Context) ([]Log, error)
}

// SearchFields lists the accessors the log table searches across.
func SearchFields() []shared.FieldAccessor[Log] {
	return []shared.FieldAccessor[Log]{
		func(l Log) string { return l.Action },
		func(l Log) string { return l.Entity },
		func(l Log) string { return l.Details },
		func(l Log) string { return l.User.FullName },
		func(l Log) string { return l.User.Email },
	}
}
