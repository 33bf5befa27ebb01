package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sparq_server/models"
	"sparq_server/services"
)

// ActionController handles the swipe-feed actions (like, unsave)
type ActionController struct {
	Engine *services.MatchmakingService
	Likes  services.LikeStore
}

// NewActionController creates a new ActionController instance
func NewActionController(engine *services.MatchmakingService, likes services.LikeStore) *ActionController {
	return &ActionController{Engine: engine, Likes: likes}
}

// HandleLike records a like and runs match detection in one call
func (ac *ActionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderHandle string            `json:"senderHandle"`
		Target       models.LikeTarget `json:"target"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.SenderHandle == "" || request.Target.Type == "" {
		http.Error(w, `{"error": "senderHandle and target are required"}`, http.StatusBadRequest)
		return
	}

	log.Printf("💖 %s liked %s", request.SenderHandle, request.Target.Key())

	outcome, err := ac.Engine.RecordLikeAndMatch(r.Context(), request.SenderHandle, request.Target)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) || errors.Is(err, services.ErrCardNotFound) {
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusNotFound)
			return
		}
		if outcome != nil && len(outcome.Matches) > 0 {
			log.Printf("⚠️ Like failed after %d match(es) were already created and published", len(outcome.Matches))
		}
		log.Printf("❌ Failed to process like: %v", err)
		http.Error(w, `{"error": "Failed to process like"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outcome)
}

// HandleUnsave removes a previously saved like
func (ac *ActionController) HandleUnsave(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderHandle string            `json:"senderHandle"`
		Target       models.LikeTarget `json:"target"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.SenderHandle == "" || request.Target.Type == "" {
		http.Error(w, `{"error": "senderHandle and target are required"}`, http.StatusBadRequest)
		return
	}

	if err := ac.Likes.RemoveLike(r.Context(), request.SenderHandle, request.Target.Key()); err != nil {
		log.Printf("❌ Failed to unsave like: %v", err)
		http.Error(w, `{"error": "Failed to unsave"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Like removed"})
}
