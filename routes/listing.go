package routes

import (
	"errors"

	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var listingStatuses = []string{
	models.ListingStatusAvailable,
	models.ListingStatusPending,
	models.ListingStatusTaken,
}

type ListingInput struct {
	Title            string   `form:"title" validate:"required"`
	Price            float64  `form:"price"`
	Area             string   `form:"area"`
	Street           string   `form:"street"`
	Landmark         string   `form:"landmark"`
	Location         string   `form:"location"`
	DistanceToCampus string   `form:"distance_to_campus"`
	RoomType         string   `form:"room_type"`
	PaymentType      string   `form:"payment_type"`
	NumPeople        int      `form:"num_people"`
	AvailableFrom    string   `form:"available_from"`
	GenderPreference string   `form:"gender_preference"`
	LifestyleRules   []string `form:"lifestyle_rules"`
	Amenities        []string `form:"amenities"`
	Description      string   `form:"description"`
	IsAvailableNow   string   `form:"is_available_now"`
}

func PostRoomForm(ctx iris.Context) {
	ctx.View("post-room.html")
}

func CreateListing(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var input ListingInput
	if err := ctx.ReadForm(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	paths, err := saveFormImages(ctx)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	numPeople := input.NumPeople
	if numPeople <= 0 {
		numPeople = 1
	}
	gender := input.GenderPreference
	if gender == "" {
		gender = "No preference"
	}

	listing := models.Listing{
		UserID:           userID,
		Title:            input.Title,
		Price:            input.Price,
		Area:             input.Area,
		Street:           input.Street,
		Landmark:         input.Landmark,
		Location:         input.Location,
		DistanceToCampus: input.DistanceToCampus,
		RoomType:         input.RoomType,
		PaymentType:      input.PaymentType,
		NumPeople:        numPeople,
		AvailableFrom:    input.AvailableFrom,
		GenderPreference: gender,
		LifestyleRules:   models.StringList(input.LifestyleRules),
		Amenities:        models.StringList(input.Amenities),
		Description:      input.Description,
		ImageURL:         firstPath(paths),
		ImageGallery:     models.StringList(paths),
		Status:           models.ListingStatusAvailable,
		IsAvailableNow:   true,
	}

	if err := storage.DB.Create(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "listing.create", "listing", listing.ID, nil, listing)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func EditRoomForm(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	var listing models.Listing
	if err := storage.FindOwned(&listing, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}

	ctx.ViewData("Room", listing)
	ctx.View("edit-room.html")
}

func UpdateListing(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	var listing models.Listing
	if err := storage.FindOwned(&listing, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}
	before := listing

	var input ListingInput
	if err := ctx.ReadForm(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	newPaths, err := saveFormImages(ctx)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// No new uploads keeps the existing gallery. Read-then-write, so a
	// concurrent writer on the same row loses on these columns.
	gallery := listing.GalleryPaths()
	if len(newPaths) > 0 {
		gallery = newPaths
	}

	updates := map[string]interface{}{
		"title":              input.Title,
		"price":              input.Price,
		"area":               input.Area,
		"street":             input.Street,
		"landmark":           input.Landmark,
		"location":           input.Location,
		"distance_to_campus": input.DistanceToCampus,
		"room_type":          input.RoomType,
		"payment_type":       input.PaymentType,
		"available_from":     input.AvailableFrom,
		"lifestyle_rules":    models.StringList(input.LifestyleRules),
		"amenities":          models.StringList(input.Amenities),
		"description":        input.Description,
		"is_available_now":   input.IsAvailableNow == "Yes",
		"image_gallery":      models.StringList(gallery),
		"image_url":          firstPath(gallery),
	}

	if err := storage.DB.Model(&listing).Updates(updates).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "listing.update", "listing", listing.ID, before, listing)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func UpdateListingStatus(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	status := ctx.PostValue("status")
	if !slices.Contains(listingStatuses, status) {
		ctx.StopWithText(iris.StatusBadRequest, "Unknown status")
		return
	}

	var listing models.Listing
	if err := storage.FindOwned(&listing, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}
	before := listing

	if err := storage.DB.Model(&listing).Update("status", status).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "listing.status", "listing", listing.ID, before, listing)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func DeleteListing(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	id := ctx.Params().GetUintDefault("id", 0)

	var listing models.Listing
	if err := storage.FindOwned(&listing, id, userID); err != nil {
		handleGuardError(err, ctx)
		return
	}

	if err := storage.DB.Delete(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "listing.delete", "listing", listing.ID, listing, nil)
	ctx.Redirect("/dashboard", iris.StatusFound)
}

// saveFormImages persists the multipart "images" files, if any, and returns
// their public paths. Non-multipart submissions yield an empty slice.
func saveFormImages(ctx iris.Context) ([]string, error) {
	form := ctx.Request().MultipartForm
	if form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	return storage.SaveImages(files)
}

func firstPath(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// handleGuardError maps guard errors onto responses. Foreign rows get the
// same 404 as missing rows so ids cannot be probed.
func handleGuardError(err error, ctx iris.Context) {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrNotOwner) {
		utils.CreateNotFound(ctx)
		return
	}
	utils.CreateInternalServerError(ctx)
}
