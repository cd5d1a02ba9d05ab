package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func CreateNotFound(ctx iris.Context) {
	ctx.StopWithText(iris.StatusNotFound, "Not found")
}

func CreateInternalServerError(ctx iris.Context) {
	ctx.StopWithText(iris.StatusInternalServerError, "Something went wrong, please try again")
}

// HandleValidationErrors renders a 400 naming the failed fields; any other
// read error gets a generic bad-request.
func HandleValidationErrors(err error, ctx iris.Context) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		msg := "Invalid input:"
		for _, fe := range verrs {
			msg += " " + fe.Field() + " (" + fe.Tag() + ")"
		}
		ctx.StopWithText(iris.StatusBadRequest, msg)
		return
	}
	ctx.StopWithText(iris.StatusBadRequest, "Invalid input")
}
