package models

// Chat roles as exchanged with clients.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of a coach conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
