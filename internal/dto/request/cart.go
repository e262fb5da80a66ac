package request

type AddToCartRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	MenuItemID string   `json:"menuItemId,omitempty" validate:"omitempty,uuid"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}
