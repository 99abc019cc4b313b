package domain

import "time"

// AuditEntry is an immutable record of one completed checkout. Entries are
// append-only; nothing in the application updates or deletes them. SlotNumber
// is denormalized on purpose: the slot itself may be deleted later.
type AuditEntry struct {
	ID            string    `json:"id"`
	SlotNumber    int       `json:"slot"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"tx_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// Receipt is the display-only summary handed back after a checkout. It is not
// persisted anywhere; the audit log is the durable record.
type Receipt struct {
	TransactionID string  `json:"tx_id"`
	SpotNumber    int     `json:"spot_number"`
	EntryTime     string  `json:"entry_time"` // "N/A" when the slot had none
	Amount        float64 `json:"amount"`
}
