package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sparq_server/models"
	"sparq_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles profile registration and lookup
type UserProfileController struct {
	Service *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{Service: service}
}

// HandleAddUserProfile registers or replaces a user profile
func (upc *UserProfileController) HandleAddUserProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if profile.UserHandle == "" || profile.ChatID == 0 {
		http.Error(w, `{"error": "userHandle and chatId are required"}`, http.StatusBadRequest)
		return
	}

	saved, err := upc.Service.AddUserProfile(r.Context(), profile)
	if err != nil {
		log.Printf("❌ Failed to save profile for %s: %v", profile.UserHandle, err)
		http.Error(w, `{"error": "Failed to save profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// HandleGetUserProfile fetches a user profile by handle
func (upc *UserProfileController) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userHandle := mux.Vars(r)["userHandle"]

	profile, err := upc.Service.GetUserProfile(r.Context(), userHandle)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to fetch profile for %s: %v", userHandle, err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleDeleteUserProfile deletes a user profile
func (upc *UserProfileController) HandleDeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	userHandle := mux.Vars(r)["userHandle"]

	if err := upc.Service.DeleteUserProfile(r.Context(), userHandle); err != nil {
		log.Printf("❌ Failed to delete profile for %s: %v", userHandle, err)
		http.Error(w, `{"error": "Failed to delete profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted successfully", "userHandle": userHandle})
}
