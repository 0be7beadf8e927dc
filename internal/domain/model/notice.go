package model

// OfferNotice carries everything the notification gateway needs to tell a
// partner about a freshly placed offer.
type OfferNotice struct {
	PartnerEmail  string
	CustomerName  string
	CustomerEmail string
	ServiceTitle  string
	ServiceType   string
	TimeSlot      string
	FullAddress   string
}
