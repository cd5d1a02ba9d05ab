package routes

import (
	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/kataras/iris/v12"
)

// Dashboard shows the user's profile beside everything they have posted,
// newest first.
func Dashboard(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var user models.User
	if err := storage.DB.Select("id, full_name, phone_number, email, created_at").First(&user, userID).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var listings []models.Listing
	if err := storage.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&listings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var ads []models.RoommateAd
	if err := storage.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&ads).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var requests []models.HousingRequest
	if err := storage.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("User", user)
	ctx.ViewData("Rooms", listings)
	ctx.ViewData("RoommateAds", ads)
	ctx.ViewData("Requests", requests)
	ctx.View("dashboard.html")
}
