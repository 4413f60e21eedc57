package webhook

import (
	"encoding/json"
	"time"
)

// Log is an append-only record of an inbound gateway event, written
// before any interpretation so a processing failure never loses the
// raw payload.
type Log struct {
	ID         int             `db:"id" json:"id"`
	Event      string          `db:"event" json:"event"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
	ReceivedAt time.Time       `db:"received_at" json:"received_at"`
}

// Event is the parsed shape of a gateway notification. Only the fields
// the reconciler reads are typed; the raw payload is kept verbatim in
// the log.
type Event struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	ID              string                `json:"id"`
	Status          string                `json:"status"`
	LastTransaction *EventLastTransaction `json:"last_transaction"`
}

type EventLastTransaction struct {
	RefuseReason string `json:"refuse_reason"`
}
