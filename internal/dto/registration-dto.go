package dto

// RegistrationForm carries the text fields of a multipart submission.
type RegistrationForm struct {
	Name          string `json:"name" form:"name"`
	Age           string `json:"age" form:"age"`
	Category      string `json:"category" form:"category"`
	Phone         string `json:"phone" form:"phone"`
	Address       string `json:"address" form:"address"`
	JerseyNumber  string `json:"jersey_number" form:"jersey_number"`
	JerseySize    string `json:"jersey_size" form:"jersey_size"`
	VoterID       string `json:"voter_id" form:"voter_id"`
	AadhaarNumber string `json:"aadhaar_number" form:"aadhaar_number"`
	TxnID         string `json:"txn_id" form:"txn_id"`
}

// AttachmentFile is one uploaded document, already read into memory.
type AttachmentFile struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

// RegistrationFiles holds the four optional attachment slots. A nil slot
// means the player did not upload that document.
type RegistrationFiles struct {
	Photo             *AttachmentFile
	VoterIDImage      *AttachmentFile
	AadhaarImage      *AttachmentFile
	PaymentScreenshot *AttachmentFile
}

type RegistrationResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
