package mykafka

import "time"

type Event struct {
	Type     string    `json:"type"`
	Resource string    `json:"resource,omitempty"`
	ID       int64     `json:"id,omitempty"`
	UserID   int64     `json:"user_id,omitempty"`
	Username string    `json:"username,omitempty"`
	Role     string    `json:"role,omitempty"`
	Data     any       `json:"data,omitempty"`
	At       time.Time `json:"at"`
}
