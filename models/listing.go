package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ListingStatusAvailable = "Available"
	ListingStatusPending   = "Pending"
	ListingStatusTaken     = "Taken"
)

type Listing struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userID" gorm:"index;not null"`
	User   User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	Title            string  `json:"title"`
	Price            float64 `json:"price"`
	Area             string  `json:"area"`
	Street           string  `json:"street"`
	Landmark         string  `json:"landmark"`
	Location         string  `json:"location"`
	DistanceToCampus string  `json:"distanceToCampus"`
	RoomType         string  `json:"roomType"`
	PaymentType      string  `json:"paymentType"`
	NumPeople        int     `json:"numPeople" gorm:"default:1"`
	AvailableFrom    string  `json:"availableFrom"`
	GenderPreference string  `json:"genderPreference" gorm:"default:No preference"`

	LifestyleRules datatypes.JSON `json:"lifestyleRules"`
	Amenities      datatypes.JSON `json:"amenities"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"imageURL"`
	ImageGallery   datatypes.JSON `json:"imageGallery"`

	Status         string `json:"status" gorm:"default:Available;index"`
	IsAvailableNow bool   `json:"isAvailableNow" gorm:"default:true"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Listing) OwnedBy(userID uint) bool { return l.UserID == userID }

// Value receivers so html/template can call these on range elements.
func (l Listing) GalleryPaths() []string  { return DecodeStringList(l.ImageGallery) }
func (l Listing) AmenityList() []string   { return DecodeStringList(l.Amenities) }
func (l Listing) LifestyleList() []string { return DecodeStringList(l.LifestyleRules) }
