package routes

import (
	"errors"

	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FullName    string `form:"full_name" validate:"required"`
	PhoneNumber string `form:"phone_number" validate:"required"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func LoginPage(ctx iris.Context) {
	ctx.View("login.html")
}

func RegisterPage(ctx iris.Context) {
	ctx.View("register.html")
}

func Register(ctx iris.Context) {
	var input RegisterInput
	if err := ctx.ReadForm(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	user := models.User{
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    string(hash),
	}

	// The unique index on email decides duplicates, including races
	// between two concurrent registrations.
	if err := storage.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.StopWithText(iris.StatusConflict, storage.ErrDuplicateEmail.Error())
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := utils.StartSession(ctx, user.ID); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func Login(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadForm(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	err := storage.DB.Where("email = ?", input.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, deliberately.
			ctx.StopWithText(iris.StatusUnauthorized, storage.ErrInvalidCredentials.Error())
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		ctx.StopWithText(iris.StatusUnauthorized, storage.ErrInvalidCredentials.Error())
		return
	}

	if err := utils.StartSession(ctx, user.ID); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.Redirect("/dashboard", iris.StatusFound)
}

func Logout(ctx iris.Context) {
	utils.EndSession(ctx)
	ctx.Redirect("/", iris.StatusFound)
}
