package dto

// RespondRequest is the partner's decision on a pending offer.
type RespondRequest struct {
	Response string `json:"response"`
}

// AssignmentResponse reports the outcome of a partner assignment.
// Notified is false when the offer was stamped but the email failed.
type AssignmentResponse struct {
	Message  string           `json:"message"`
	Notified bool             `json:"notified"`
	Order    *OrderResponse   `json:"order,omitempty"`
	Partner  *PartnerResponse `json:"partner,omitempty"`
}
