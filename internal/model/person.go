package model

// MailEvent is one directed mail delivery between two persons. Timestamp
// is epoch milliseconds, UTC.
type MailEvent struct {
	Timestamp   int64 `json:"timestamp"`
	SenderID    int64 `json:"sender_id"`
	RecipientID int64 `json:"recipient_id"`
}

// ActorRow is a raw person row as stored in the corpus database.
// Email and DisplayName are nil when the source column is NULL.
type ActorRow struct {
	RawID       int64
	Email       *string
	DisplayName *string
}

// Person maps a raw person id to its unified identity. UnifiedID equals
// RawID for the first-seen raw id bearing a canonical name; every later
// raw id with the same canonical name points at that first id.
type Person struct {
	RawID         int64  `json:"raw_id"`
	UnifiedID     int64  `json:"unified_id"`
	CanonicalName string `json:"canonical_name"`
}

// MonthCount is a calendar-month bucket and its event count. Stamp is the
// epoch-millisecond timestamp of the first instant of the month, UTC.
type MonthCount struct {
	Stamp int64 `json:"stamp"`
	Count int64 `json:"count"`
}
