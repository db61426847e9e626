package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message is one turn of a document-query conversation
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Conversation stores the query history for one user and product
// surface, so follow-up questions keep their context.
type Conversation struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_conv_user_product"`
	Product   string    `json:"product" gorm:"type:varchar(100);not null;uniqueIndex:idx_conv_user_product"`
	Messages  []Message `json:"messages" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Conversation) TableName() string {
	return "conversations"
}

// Append adds one user/assistant exchange to the history
func (c *Conversation) Append(query, answer string) {
	c.Messages = append(c.Messages,
		Message{Role: "user", Content: query},
		Message{Role: "assistant", Content: answer},
	)
	c.UpdatedAt = time.Now()
}
