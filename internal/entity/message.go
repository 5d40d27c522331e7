package entity

import "time"

// Message rows are append-only. Seen only ever moves false -> true, flipped by the receiver.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index:idx_messages_pair,priority:1" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index:idx_messages_pair,priority:2;index:idx_messages_unread,priority:1" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Seen       bool      `gorm:"not null;default:false;index:idx_messages_unread,priority:2" json:"seen"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
