package model

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// PromptMessage is one chat message handed to the completion service.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
