// internal/models/chat.go
package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role string `json:"role" validate:"omitempty,oneof=user model"`
	Text string `json:"text"`
}
