package items

// CreateItemRequest is the body of POST /api/items. Quantity and Price are pointers so an
// explicit zero is accepted while an absent field is not.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required" example:"Widget"`
	Description *string `json:"description,omitempty" example:"Blue, 10cm"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0,lte=2147483647" example:"12"`
	Price       *int64  `json:"price" validate:"required,gte=0" example:"1999"`
}

// UpdateItemRequest is the body of PUT /api/items. Every field is overwritten.
type UpdateItemRequest struct {
	ID          int64   `json:"id" validate:"required" example:"1"`
	Name        string  `json:"name" validate:"required" example:"Widget"`
	Description *string `json:"description,omitempty" example:"Blue, 10cm"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0,lte=2147483647" example:"10"`
	Price       *int64  `json:"price" validate:"required,gte=0" example:"2499"`
}

// DeleteItemRequest is the body of DELETE /api/items.
type DeleteItemRequest struct {
	ID int64 `json:"id" validate:"required" example:"1"`
}

// ListItemsResponse wraps GET /api/items.
type ListItemsResponse struct {
	Success bool   `json:"success" example:"true"`
	Items   []Item `json:"items"`
}

// ItemResponse is returned by single-item reads and writes that echo the row.
type ItemResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Item added."`
	Item    *Item  `json:"item"`
}
