package entity

// EmailMessage is an outbound email as accepted by the send-email proxy.
type EmailMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"text,omitempty"`
	HTMLBody string `json:"html,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// EmailReceipt is what a provider reports back after accepting a message.
type EmailReceipt struct {
	ID     string // Provider message id, or a local id for queued and logged sends.
	Queued bool   // True when the message was handed to the mail worker instead of sent inline.
}
