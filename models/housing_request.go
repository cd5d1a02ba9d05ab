package models

import "time"

type HousingRequest struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userID" gorm:"index;not null"`
	User   User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	Budget            float64 `json:"budget"`
	PreferredLocation string  `json:"preferredLocation"`
	Description       string  `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *HousingRequest) OwnedBy(userID uint) bool { return r.UserID == userID }
