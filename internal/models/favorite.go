// internal/models/favorite.go
package models

// Favorite is a durably stored product the user starred. The full record is
// copied in because search results are discarded on the next search while
// favorites outlive them.
type Favorite struct {
	BaseModel
	ProductID   string  `json:"product_id" gorm:"size:255;not null;uniqueIndex"`
	Brand       string  `json:"brand" gorm:"size:255"`
	Model       string  `json:"model" gorm:"size:255"`
	Price       float64 `json:"price" gorm:"type:decimal(12,2);default:0"`
	Currency    string  `json:"currency" gorm:"size:10"`
	ImageURL    string  `json:"image_url" gorm:"type:text"`
	Supplier    string  `json:"supplier" gorm:"size:255"`
	ProductURL  string  `json:"product_url" gorm:"type:text"`
	Specs       SpecMap `json:"specs" gorm:"type:jsonb"`
	Condition   string  `json:"condition" gorm:"size:50"`
	Description string  `json:"description" gorm:"type:text"`
}

// Product converts the stored row back to the wire shape.
func (f *Favorite) Product() Product {
	return Product{
		ID:          f.ProductID,
		Brand:       f.Brand,
		Model:       f.Model,
		Price:       f.Price,
		Currency:    f.Currency,
		ImageURL:    f.ImageURL,
		Supplier:    f.Supplier,
		ProductURL:  f.ProductURL,
		Specs:       f.Specs,
		Condition:   f.Condition,
		Description: f.Description,
	}
}

// FavoriteFromProduct copies a search result into its durable form.
func FavoriteFromProduct(p Product) *Favorite {
	return &Favorite{
		ProductID:   p.ID,
		Brand:       p.Brand,
		Model:       p.Model,
		Price:       p.Price,
		Currency:    p.Currency,
		ImageURL:    p.ImageURL,
		Supplier:    p.Supplier,
		ProductURL:  p.ProductURL,
		Specs:       p.Specs,
		Condition:   p.Condition,
		Description: p.Description,
	}
}
