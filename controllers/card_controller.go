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

// CardController handles event cards in the swipe feed
type CardController struct {
	Service *services.CardService
}

// NewCardController creates a new CardController instance
func NewCardController(service *services.CardService) *CardController {
	return &CardController{Service: service}
}

// HandleAddCard creates a new event card
func (cc *CardController) HandleAddCard(w http.ResponseWriter, r *http.Request) {
	var card models.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if card.CardID == "" || card.Title == "" {
		http.Error(w, `{"error": "cardId and title are required"}`, http.StatusBadRequest)
		return
	}

	saved, err := cc.Service.AddCard(r.Context(), card)
	if err != nil {
		log.Printf("❌ Failed to save card %s: %v", card.CardID, err)
		http.Error(w, `{"error": "Failed to save card"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// HandleGetCard fetches an event card by id
func (cc *CardController) HandleGetCard(w http.ResponseWriter, r *http.Request) {
	cardID := mux.Vars(r)["cardId"]

	card, err := cc.Service.GetCard(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			http.Error(w, `{"error": "Card not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to fetch card %s: %v", cardID, err)
		http.Error(w, `{"error": "Failed to fetch card"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(card)
}

// HandleGetCardLikers lists who saved a card
func (cc *CardController) HandleGetCardLikers(w http.ResponseWriter, r *http.Request) {
	cardID := mux.Vars(r)["cardId"]

	likers, err := cc.Service.GetCardLikers(r.Context(), cardID)
	if err != nil {
		log.Printf("❌ Failed to fetch likers for card %s: %v", cardID, err)
		http.Error(w, `{"error": "Failed to fetch card likers"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(likers)
}
