package domain

import "time"

type Product struct {
	ProductID      uint64    `json:"productId" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null"`
	BasePrice      int64     `json:"basePrice" gorm:"not null"`
	DiscountPrice  int64     `json:"discountPrice" gorm:"not null"`
	AvailableStock int       `json:"availableStock" gorm:"not null"`
	Available      bool      `json:"available" gorm:"not null"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// IsAvailable reports whether the product can be ordered at all.
// The availability flag and a positive stock level are both required.
func (p *Product) IsAvailable() bool {
	return p.Available && p.AvailableStock > 0
}

func (p *Product) HasEnoughStock(quantity int) bool {
	return p.AvailableStock >= quantity
}
