package models

// Category groups products on the menu (burgers, drinks, sides, ...).
// Lower DisplayOrder appears first; the value does not need to be unique.
type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	Products     []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
