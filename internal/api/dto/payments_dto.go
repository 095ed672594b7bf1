package dto

// MpesaPushRequest asks the till to prompt a customer's phone.
type MpesaPushRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

// MpesaPushResponse relays the Daraja acknowledgement.
type MpesaPushResponse struct {
	MerchantRequestID string `json:"merchant_request_id"`
	CheckoutRequestID string `json:"checkout_request_id"`
	CustomerMessage   string `json:"customer_message"`
}
