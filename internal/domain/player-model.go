package domain

import (
	"time"
)

type PlayerStatus string

const (
	PlayerStatusPending  PlayerStatus = "Pending"
	PlayerStatusApproved PlayerStatus = "Approved"
	PlayerStatusRejected PlayerStatus = "Rejected"
)

// AttachmentSlot names the four document roles a registration may carry.
type AttachmentSlot string

const (
	SlotPhoto             AttachmentSlot = "photo"
	SlotVoterIDImage      AttachmentSlot = "voter_id_image"
	SlotAadhaarImage      AttachmentSlot = "aadhaar_image"
	SlotPaymentScreenshot AttachmentSlot = "payment_screenshot"
)

// Constraint names for the three identity/payment keys. The repository
// classifies unique violations by these, so they must match the gorm tags.
const (
	UidxPlayersVoterID = "uidx_players_voter_id"
	UidxPlayersAadhaar = "uidx_players_aadhaar_number"
	UidxPlayersTxnID   = "uidx_players_txn_id"
)

type Player struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"type:varchar(100);not null" json:"name"`
	Age          string       `gorm:"type:varchar(10);not null" json:"age"`
	Category     string       `gorm:"type:varchar(50);not null" json:"category"`
	Phone        string       `gorm:"type:varchar(20);not null" json:"phone"`
	Address      string       `gorm:"type:text;not null" json:"address"`
	JerseyNumber string       `gorm:"type:varchar(10);not null" json:"jersey_number"`
	JerseySize   string       `gorm:"type:varchar(10);not null" json:"jersey_size"`
	Status       PlayerStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`

	// Identity/payment keys, unique across every status.
	VoterID       string `gorm:"type:varchar(50);not null;index:uidx_players_voter_id,unique" json:"voter_id"`
	AadhaarNumber string `gorm:"type:varchar(50);not null;index:uidx_players_aadhaar_number,unique" json:"aadhaar_number"`
	TxnID         string `gorm:"type:varchar(100);not null;index:uidx_players_txn_id,unique" json:"txn_id"`

	// Attachment references; empty string means the slot was omitted.
	VoterIDImage      string `gorm:"type:text" json:"voter_id_image,omitempty"`
	AadhaarImage      string `gorm:"type:text" json:"aadhaar_image,omitempty"`
	Photo             string `gorm:"type:text" json:"photo,omitempty"`
	PaymentScreenshot string `gorm:"type:text" json:"payment_screenshot,omitempty"`

	RejectionReason *string `gorm:"type:text" json:"rejection_reason,omitempty"`

	// No DeletedAt here: a delete must remove the row outright so the
	// unique keys above become reusable. A soft-deleted row would still
	// occupy the indexes while being invisible to every query.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
