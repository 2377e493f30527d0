package models

import "time"

// Message is one entry of a case conversation.
type Message struct {
	Sender    Role      `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
