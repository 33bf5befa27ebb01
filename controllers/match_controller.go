package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"sparq_server/services"

	"github.com/gorilla/mux"
)

// MatchController exposes a user's matches
type MatchController struct {
	Matches services.MatchStore
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matches services.MatchStore) *MatchController {
	return &MatchController{Matches: matches}
}

// HandleGetMatches fetches all matches for a user
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userHandle := mux.Vars(r)["userHandle"]
	if userHandle == "" {
		http.Error(w, `{"error": "userHandle is required"}`, http.StatusBadRequest)
		return
	}

	matches, err := mc.Matches.ListMatchesForUser(r.Context(), userHandle)
	if err != nil {
		log.Printf("❌ Failed to fetch matches for %s: %v", userHandle, err)
		http.Error(w, `{"error": "Failed to fetch matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
