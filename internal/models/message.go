package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AgentID identifies a persona. The set of personas is closed, see package agents.
type AgentID string

// Message is a single entry in a persona's conversation thread
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	AgentID   AgentID   `json:"agent_id"`
}

// Persona is a conversational role the user can pick
type Persona struct {
	ID           AgentID  `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	Capabilities []string `json:"capabilities"`
}
