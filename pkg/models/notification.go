package models

// Notification is a single outbound email, in both rich and plain form
type Notification struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Receipt is what the email provider hands back for an accepted message
type Receipt struct {
	ID string `json:"id"`
}
