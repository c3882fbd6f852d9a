package amqp

import (
	"encoding/json"
	"time"
)

// ChangeMessage announces one applied collection mutation. The worker does
// not trust the message for data; it reloads the blob from persistence and
// snapshots that.
type ChangeMessage struct {
	Op        string    `json:"op"`
	EntryID   string    `json:"entry_id,omitempty"`
	Size      int       `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(op, entryID string, size int) *ChangeMessage {
	return &ChangeMessage{
		Op:        op,
		EntryID:   entryID,
		Size:      size,
		Timestamp: time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
