package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Image       string          `json:"image"`
	CategoryID  uint            `json:"category_id" gorm:"not null"`
	Category    Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Available   bool            `json:"available" gorm:"default:true"`
	Featured    bool            `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
