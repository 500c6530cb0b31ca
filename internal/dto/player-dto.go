package dto

// ApprovedPlayerResponse is the public projection. Identity document
// references stay out of it on purpose.
type ApprovedPlayerResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Age        string `json:"age"`
	Category   string `json:"category"`
	JerseySize string `json:"jersey_size"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Photo      string `json:"photo,omitempty"`
}

// PendingPlayerResponse is the admin review projection, including the
// identity keys and all four attachment references.
type PendingPlayerResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Age               string `json:"age"`
	Category          string `json:"category"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	JerseyNumber      string `json:"jersey_number"`
	JerseySize        string `json:"jersey_size"`
	VoterID           string `json:"voter_id"`
	AadhaarNumber     string `json:"aadhaar_number"`
	TxnID             string `json:"txn_id"`
	VoterIDImage      string `json:"voter_id_image,omitempty"`
	AadhaarImage      string `json:"aadhaar_image,omitempty"`
	Photo             string `json:"photo,omitempty"`
	PaymentScreenshot string `json:"payment_screenshot,omitempty"`
}

type RejectedPlayerResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	RejectionReason string `json:"rejection_reason"`
}
