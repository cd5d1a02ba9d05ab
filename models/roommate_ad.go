package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AdStatusOpen   = "Open"
	AdStatusClosed = "Closed"
)

// RoommateAd is a self-description plus preference profile. The unique index
// on UserID enforces at most one ad per user.
type RoommateAd struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userID" gorm:"uniqueIndex;not null"`
	User   User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	AptType          string `json:"aptType"`
	TotalRooms       int    `json:"totalRooms"`
	TotalOccupants   int    `json:"totalOccupants"`
	Area             string `json:"area"`
	Landmark         string `json:"landmark"`
	DistanceToCampus string `json:"distanceToCampus"`
	IsFurnished      string `json:"isFurnished"`

	Facilities      datatypes.JSON `json:"facilities"`
	RoommateShare   float64        `json:"roommateShare"`
	PaymentDuration string         `json:"paymentDuration"`
	LightBillSplit  string         `json:"lightBillSplit"`

	MyDept        string `json:"myDept"`
	MySleep       string `json:"mySleep"`
	MyNeatness    string `json:"myNeatness"`
	MyPersonality string `json:"myPersonality"`
	MySmoke       string `json:"mySmoke"`
	MyDrink       string `json:"myDrink"`

	PrefGender     string `json:"prefGender"`
	PrefLifestyle  string `json:"prefLifestyle"`
	PrefOccupation string `json:"prefOccupation"`

	Description string         `json:"description"`
	Images      datatypes.JSON `json:"images"`
	Status      string         `json:"status" gorm:"default:Open;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *RoommateAd) OwnedBy(userID uint) bool { return a.UserID == userID }

// Value receivers so html/template can call these on range elements.
func (a RoommateAd) ImagePaths() []string   { return DecodeStringList(a.Images) }
func (a RoommateAd) FacilityList() []string { return DecodeStringList(a.Facilities) }
