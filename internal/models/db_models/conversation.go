package db_models

// Conversation is an append-only log of saved chats: every completed exchange
// inserts a new row, never updates an existing one.
type Conversation struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	OwnerEmail string `gorm:"index"`
	Name       string
	Transcript string // JSON-serialized ordered list of role/content pairs
	CreatedAt  int64  `gorm:"autoCreateTime"`
}
