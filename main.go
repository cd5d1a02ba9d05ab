package main

import (
	"log"
	"os"

	"github.com/Alitedigitals2007/student-home-ng/routes"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func main() {
	storage.InitializeDB()
	storage.InitializeRedis()
	storage.InitializeSessions()
	storage.InitializeUploads()

	app := iris.New()
	app.Validator = validator.New()

	app.RegisterView(iris.HTML("./views", ".html"))
	app.HandleDir("/uploads", iris.Dir(storage.UploadDir))
	app.HandleDir("/static", iris.Dir("./public/static"))

	// Auth
	app.Get("/login", routes.LoginPage)
	app.Get("/register", routes.RegisterPage)
	app.Get("/logout", routes.Logout)
	app.Post("/auth/register", routes.Register)
	app.Post("/auth/login", routes.Login)

	// Dashboard
	app.Get("/dashboard", utils.RequireAuth, routes.Dashboard)

	// Listings
	app.Get("/post-room", utils.RequireAuth, routes.PostRoomForm)
	app.Post("/post-room", utils.RequireAuth, routes.CreateListing)
	app.Get("/edit-room/{id:uint}", utils.RequireAuth, routes.EditRoomForm)
	app.Post("/update-room/{id:uint}", utils.RequireAuth, routes.UpdateListing)
	app.Post("/update-status/{id:uint}", utils.RequireAuth, routes.UpdateListingStatus)
	app.Post("/delete-room/{id:uint}", utils.RequireAuth, routes.DeleteListing)

	// Roommate ads
	app.Get("/post-roommate", utils.RequireAuth, routes.PostRoommateForm)
	app.Post("/post-roommate", utils.RequireAuth, routes.CreateRoommateAd)
	app.Post("/delete-roommate-ad/{id:uint}", utils.RequireAuth, routes.DeleteRoommateAd)
	app.Post("/toggle-roommate-status/{id:uint}", utils.RequireAuth, routes.ToggleRoommateStatus)

	// Housing requests
	app.Post("/post-request", utils.RequireAuth, routes.CreateHousingRequest)
	app.Post("/delete-request/{id:uint}", utils.RequireAuth, routes.DeleteHousingRequest)

	// Public boards
	app.Get("/", routes.Home)
	app.Get("/listings", routes.PublicListings)
	app.Get("/roommates", routes.PublicRoommates)
	app.Get("/requests", routes.RequestBoard)
	app.Get("/room/{id:uint}", routes.RoomDetails)
	app.Get("/roommate/{id:uint}", routes.RoommateDetails)
	app.Get("/healthz", routes.Healthz)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("listening on :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
