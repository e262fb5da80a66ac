package response

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentResponse struct {
	PaymentResult *InsertResult `json:"paymentResult"`
	DeleteResult  *DeleteResult `json:"deleteResult"`
}
