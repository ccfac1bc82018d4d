package domain

import "time"

type Apartment struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Address     string    `json:"address" validate:"required"`
	City        string    `json:"city" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Surface     float64   `json:"surface,omitempty" validate:"omitempty,gt=0"`
	Rooms       int       `json:"rooms,omitempty" validate:"omitempty,gte=1"`
	Floor       int       `json:"floor,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty"`
	OwnerID     int64     `json:"owner_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner *Owner `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Apartment) TableName() string {
	return "apartments"
}
