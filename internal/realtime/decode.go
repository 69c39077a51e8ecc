package realtime

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/vk/campaignflow/internal/campaign"
)

// graphPayload is the inbound "campaign-update" body: a raw graph to be
// sanitized and saved.
type graphPayload struct {
	Nodes []campaign.Node `json:"nodes"`
	Edges []campaign.Edge `json:"edges"`
}

// userEventPayload is the inbound "user-event" body. Field names follow the
// wire contract with the editor frontend.
type userEventPayload struct {
	UserID    string `json:"userId"`
	EventType string `json:"eventType"`
}

// decodePayload converts a Socket.IO argument (generic maps and slices from
// the parser) into a typed payload by round-tripping through JSON.
func decodePayload(raw any, dest any) error {
	b, err := sonic.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to re-encode payload: %w", err)
	}
	if err := sonic.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
