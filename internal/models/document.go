package models

import "encoding/json"

// RawDocument is a stored document together with the id the store assigned to it.
type RawDocument struct {
	ID   string
	Body json.RawMessage
}
