package model

import (
	"time"
)

type Cafe struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:250;not null;uniqueIndex" validate:"notblank,max=250"`
	MapURL       string    `json:"map_url" gorm:"size:500;not null" validate:"notblank,url,max=500"`
	ImgURL       string    `json:"img_url" gorm:"size:500;not null" validate:"notblank,url,max=500"`
	Location     string    `json:"location" gorm:"size:250;not null" validate:"notblank,max=250"`
	Seats        string    `json:"seats" gorm:"size:250;not null" validate:"notblank,max=250"`
	HasToilet    Answer    `json:"has_toilet"`
	HasWifi      Answer    `json:"has_wifi"`
	HasSockets   Answer    `json:"has_sockets"`
	CanTakeCalls Answer    `json:"can_take_calls"`
	CoffeePrice  *string   `json:"coffee_price" gorm:"size:250" validate:"omitempty,max=250"`
	CreatedAt    time.Time `json:"created_at"`
}

// Price returns the coffee price or an empty string when none was given.
func (c Cafe) Price() string {
	if c.CoffeePrice == nil {
		return ""
	}
	return *c.CoffeePrice
}
