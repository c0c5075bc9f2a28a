package supabase

import (
	"github.com/supabase-community/supabase-go"
)

// RealtimeClient publishes order lifecycle events for the admin dashboard.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// The Go client has no direct Realtime publish; Postgres changes on the
	// orders table trigger Realtime subscriptions automatically. This remains
	// the hook for explicit event publishing via the Realtime REST API.
	return nil
}

func (r *RealtimeClient) PublishOrderEvent(orderID string, event string, payload map[string]interface{}) error {
	return r.PublishEvent("orders:"+orderID, event, payload)
}

// Event payloads

func OrderCreatedPayload(orderID, dtfType string) map[string]interface{} {
	return map[string]interface{}{
		"order_id": orderID,
		"status":   "pending",
		"dtf_type": dtfType,
	}
}

func StatusChangedPayload(orderID, status string) map[string]interface{} {
	return map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	}
}
