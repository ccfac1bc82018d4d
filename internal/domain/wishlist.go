package domain

import "time"

// Wishlist links a user to an apartment they favorited. The composite unique
// index keeps a (user, apartment) pair from appearing twice; rows are created
// and hard-deleted, never updated.
type Wishlist struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_apartment"`
	ApartmentID int64     `json:"apartment_id" gorm:"not null;index;uniqueIndex:idx_user_apartment"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Apartment *Apartment `json:"apartment,omitempty" gorm:"foreignKey:ApartmentID"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
