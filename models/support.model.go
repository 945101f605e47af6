package models

import "gorm.io/gorm"

// Ticket statuses. open -> closed is one way, there is no reopen.
const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// SupportTicket is addressed externally by its UUID, never by the row id
type SupportTicket struct {
	gorm.Model
	TicketID  string `json:"ticket_id" gorm:"uniqueIndex;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Subject   string `json:"subject"`
	Status    string `json:"status" gorm:"default:'open'"` // open, closed
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

type SupportMessage struct {
	gorm.Model
	SupportTicketID uint   `json:"-" gorm:"index;not null"`
	AuthorID        uint   `json:"author_id" gorm:"not null"`
	IsStaff         bool   `json:"is_staff" gorm:"default:false"`
	Content         string `json:"content" gorm:"type:text"`
}
