package routes

import (
	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/kataras/iris/v12"
)

type HousingRequestInput struct {
	Budget      float64 `form:"budget"`
	Location    string  `form:"location" validate:"required"`
	Description string  `form:"description"`
}

func CreateHousingRequest(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var input HousingRequestInput
	if err := ctx.ReadForm(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	request := models.HousingRequest{
		UserID:            userID,
		Budget:            input.Budget,
		PreferredLocation: input.Location,
		Description:       input.Description,
	}

	if err := storage.DB.Create(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "housing_request.create", "housing_request", request.ID, nil, request)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func DeleteHousingRequest(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	var request models.HousingRequest
	if err := storage.FindOwned(&request, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}

	if err := storage.DB.Delete(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "housing_request.delete", "housing_request", request.ID, request, nil)
	ctx.Redirect("/dashboard", iris.StatusFound)
}
