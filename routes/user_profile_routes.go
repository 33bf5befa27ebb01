package routes

import (
	"sparq_server/controllers"
	"sparq_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profiles under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleAddUserProfile).Methods("POST")
	profileRouter.HandleFunc("/{userHandle}", controller.HandleGetUserProfile).Methods("GET")
	profileRouter.HandleFunc("/{userHandle}", controller.HandleDeleteUserProfile).Methods("DELETE")
}
