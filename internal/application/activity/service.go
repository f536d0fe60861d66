package activity

import (
	"context"

	"github.com/ashobox/backoffice/internal/domain/activity"
	"github.com/ashobox/backoffice/internal/domain/shared"
)

// Service reads the marketplace audit trail. The trail is append-only and
// written elsewhere; this side never mutates it.
type Service struct {
	source activity.LogSource
}

// NewService creates a new activity Service.
func NewService(source activity.LogSource) *Service {
	return &Service{source: source}
}

// List returns audit entries matching the search term across action,
// entity, details and the acting user's name and email.
func (s *Service) List(ctx context.Context, search string) ([]activity.Log, error) {
	logs, err := s.source.FetchActivityLogs(ctx)
	if err != nil {
		return nil, err
	}
	return shared.FilterBySubstring(logs, search, activity.SearchFields()...), nil
}
