package model

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Type        string  `gorm:"type:varchar(100);not null" json:"type"`
	SKU         string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
	ImageURL    string  `gorm:"type:text" json:"image_url,omitempty"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Quantity    int     `gorm:"not null;default:0" json:"quantity"`
	Price       float64 `gorm:"not null;default:0" json:"price"`

	// Audit: user IDs taken from the session token
	CreatedBy string `gorm:"type:varchar(64)" json:"created_by,omitempty"`
	UpdatedBy string `gorm:"type:varchar(64)" json:"updated_by,omitempty"`
}

// ProductPage is one page of the catalog plus the pagination metadata.
type ProductPage struct {
	Products      []Product `json:"products"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	TotalProducts int64     `json:"totalProducts"`
}
