package restapi

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ActivityLog is one audit-trail entry for a staff account.
type ActivityLog struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
}

// UserActivityLogs returns the audit trail for one staff account, newest
// first. Admin-only server-side. The backend wraps the list in a data
// envelope; an absent or null list means no activity.
func (c *Client) UserActivityLogs(ctx context.Context, userID int) ([]ActivityLog, error) {
	path := fmt.Sprintf("/admin/activityLogs/users/%d", userID)

	var resp struct {
		Data []ActivityLog `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []ActivityLog{}, nil
	}
	return resp.Data, nil
}
