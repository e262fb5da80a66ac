package request

type CreateMenuItemRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Category string   `json:"category" validate:"required,max=50"`
	Price    *float64 `json:"price" validate:"required,gt=0"`
	Recipe   string   `json:"recipe,omitempty"`
	Image    string   `json:"image,omitempty"`
}

type UpdateMenuItemRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}
