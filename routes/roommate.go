package routes

import (
	"errors"

	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type RoommateAdInput struct {
	AptType          string   `form:"apt_type" validate:"required"`
	TotalRooms       int      `form:"total_rooms"`
	TotalOccupants   int      `form:"total_occupants"`
	Area             string   `form:"area"`
	Landmark         string   `form:"landmark"`
	DistanceToCampus string   `form:"distance_to_campus"`
	IsFurnished      string   `form:"is_furnished"`
	Facilities       []string `form:"facilities"`
	RoommateShare    float64  `form:"roommate_share"`
	PaymentDuration  string   `form:"payment_duration"`
	LightBillSplit   string   `form:"light_bill_split"`
	MyDept           string   `form:"my_dept"`
	MySleep          string   `form:"my_sleep"`
	MyNeatness       string   `form:"my_neatness"`
	MyPersonality    string   `form:"my_personality"`
	MySmoke          string   `form:"my_smoke"`
	MyDrink          string   `form:"my_drink"`
	PrefGender       string   `form:"pref_gender"`
	PrefLifestyle    string   `form:"pref_lifestyle"`
	PrefOccupation   string   `form:"pref_occupation"`
	Description      string   `form:"description"`
}

// PostRoommateForm renders the ad form, pre-filled with the user's existing
// ad when there is one.
func PostRoommateForm(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var existing *models.RoommateAd
	var ad models.RoommateAd
	err := storage.DB.Where("user_id = ?", userID).First(&ad).Error
	if err == nil {
		existing = &ad
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.ViewData("Ad", existing)
	ctx.View("post-roommate.html")
}

func CreateRoommateAd(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var input RoommateAdInput
	if err := ctx.ReadForm(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	paths, err := saveFormImages(ctx)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ad := models.RoommateAd{
		UserID:           userID,
		AptType:          input.AptType,
		TotalRooms:       input.TotalRooms,
		TotalOccupants:   input.TotalOccupants,
		Area:             input.Area,
		Landmark:         input.Landmark,
		DistanceToCampus: input.DistanceToCampus,
		IsFurnished:      input.IsFurnished,
		Facilities:       models.StringList(input.Facilities),
		RoommateShare:    input.RoommateShare,
		PaymentDuration:  input.PaymentDuration,
		LightBillSplit:   input.LightBillSplit,
		MyDept:           input.MyDept,
		MySleep:          input.MySleep,
		MyNeatness:       input.MyNeatness,
		MyPersonality:    input.MyPersonality,
		MySmoke:          input.MySmoke,
		MyDrink:          input.MyDrink,
		PrefGender:       input.PrefGender,
		PrefLifestyle:    input.PrefLifestyle,
		PrefOccupation:   input.PrefOccupation,
		Description:      input.Description,
		Images:           models.StringList(paths),
		Status:           models.AdStatusOpen,
	}

	if err := storage.DB.Create(&ad).Error; err != nil {
		// One ad per user, enforced by the unique index on user_id.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.StopWithText(iris.StatusConflict, "You already have a roommate ad; delete it before posting a new one")
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "roommate_ad.create", "roommate_ad", ad.ID, nil, ad)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func DeleteRoommateAd(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	var ad models.RoommateAd
	if err := storage.FindOwned(&ad, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}

	if err := storage.DB.Delete(&ad).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "roommate_ad.delete", "roommate_ad", ad.ID, ad, nil)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

// ToggleRoommateStatus flips Open and Closed. The write goes through the same
// owner-guarded row as the read.
func ToggleRoommateStatus(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	var ad models.RoommateAd
	if err := storage.FindOwned(&ad, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}
	before := ad

	newStatus := models.AdStatusOpen
	if ad.Status == models.AdStatusOpen {
		newStatus = models.AdStatusClosed
	}

	if err := storage.DB.Model(&ad).Update("status", newStatus).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "roommate_ad.status", "roommate_ad", ad.ID, before, ad)
	ctx.Redirect("/dashboard", iris.StatusFound)
}
