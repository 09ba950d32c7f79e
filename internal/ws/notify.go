package ws

import (
	"encoding/json"
	"time"

	"tradeaskill/internal/domain/user"
)

const EventProfileUpdated = "profile_updated"

type ProfileUpdatedEvent struct {
	Type      string       `json:"type"`
	Profile   user.Profile `json:"profile"`
	Guest     bool         `json:"guest"`
	Timestamp string       `json:"timestamp"`
}

// ProfileChanged pushes the new profile to every open socket of the session,
// so other tabs re-render without a reload.
func (h *Hub) ProfileChanged(sessionID string, p user.Profile) {
	if h == nil {
		return
	}
	evt := ProfileUpdatedEvent{
		Type:      EventProfileUpdated,
		Profile:   p,
		Guest:     p.IsGuest(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logf("WS encode failed | session=%s err=%v", sessionID, err)
		return
	}
	h.Publish(sessionID, b)
}
