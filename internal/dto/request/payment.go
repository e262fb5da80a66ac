package request

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type RecordPaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         *float64 `json:"price" validate:"required,min=0"`
	TransactionID string   `json:"transactionId,omitempty"`
	CartIDs       []string `json:"cartIds" validate:"required,min=1,dive,uuid"`
	MenuItemIDs   []string `json:"menuItemIds,omitempty" validate:"omitempty,dive,uuid"`
}
