package seimoney

import (
	"context"
	"net/url"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/types"
)

// AnalyticsModule reads activity history and aggregate dashboards.
type AnalyticsModule struct {
	client *client.Client
}

func NewAnalyticsModule(c *client.Client) *AnalyticsModule {
	return &AnalyticsModule{client: c}
}

// GetActivities returns all activities for the authenticated user,
// most-recent-first.
func (m *AnalyticsModule) GetActivities(ctx context.Context) ([]types.Activity, error) {
	var activities []types.Activity
	if err := m.client.Get(ctx, "/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetAnalytics returns the aggregate analytics snapshot.
func (m *AnalyticsModule) GetAnalytics(ctx context.Context) (*types.Analytics, error) {
	var analytics types.Analytics
	if err := m.client.Get(ctx, "/analytics", &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// GetActivitiesFor returns the activities of one payment link, file, or
// contract.
func (m *AnalyticsModule) GetActivitiesFor(ctx context.Context, id string) ([]types.Activity, error) {
	var activities []types.Activity
	if err := m.client.Get(ctx, "/activities/"+url.PathEscape(id), &activities,
		client.WithRoute("/activities/{id}")); err != nil {
		return nil, err
	}
	return activities, nil
}
