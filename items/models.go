package items

import "time"

// Item is one inventory row. Price is in minor currency units (centavos).
type Item struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"Widget"`
	Description *string   `json:"description" example:"Blue, 10cm"`
	Quantity    int       `json:"quantity" example:"12"`
	Price       int64     `json:"price" example:"1999"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
