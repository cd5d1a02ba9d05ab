package routes

import (
	"errors"

	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

func Home(ctx iris.Context) {
	ctx.View("index.html")
}

// PublicListings is the open board: available rooms only, newest first.
func PublicListings(ctx iris.Context) {
	var rooms []models.Listing
	err := storage.DB.
		Where("status = ?", models.ListingStatusAvailable).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("Rooms", rooms)
	ctx.View("listings.html")
}

// PublicRoommates lists open ads with the poster's contact details joined in.
func PublicRoommates(ctx iris.Context) {
	var ads []models.RoommateAd
	err := storage.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, phone_number")
		}).
		Where("status = ?", models.AdStatusOpen).
		Order("created_at DESC").
		Find(&ads).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("Ads", ads)
	ctx.View("roommates.html")
}

func RoomDetails(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)

	var room models.Listing
	err := storage.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, phone_number")
		}).
		First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("Room", room)
	ctx.View("room-details.html")
}

func RoommateDetails(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)

	var ad models.RoommateAd
	err := storage.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, phone_number, email")
		}).
		First(&ad, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("Ad", ad)
	ctx.View("roommate-details.html")
}

// RequestBoard shows every housing request; requests stay up until their
// owner deletes them.
func RequestBoard(ctx iris.Context) {
	var requests []models.HousingRequest
	err := storage.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, phone_number")
		}).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("Requests", requests)
	ctx.View("request-board.html")
}

func Healthz(ctx iris.Context) {
	sqlDB, err := storage.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		ctx.StopWithJSON(iris.StatusServiceUnavailable, iris.Map{"status": "down"})
		return
	}
	ctx.JSON(iris.Map{"status": "ok"})
}
