package routes

import (
	"sparq_server/controllers"
	"sparq_server/services"

	"github.com/gorilla/mux"
)

// RegisterCardRoutes sets up routes for event cards under /api/cards
func RegisterCardRoutes(r *mux.Router, cardService *services.CardService) {
	controller := controllers.NewCardController(cardService)

	cardRouter := r.PathPrefix("/api/cards").Subrouter()
	cardRouter.HandleFunc("", controller.HandleAddCard).Methods("POST")
	cardRouter.HandleFunc("/{cardId}", controller.HandleGetCard).Methods("GET")
	cardRouter.HandleFunc("/{cardId}/likers", controller.HandleGetCardLikers).Methods("GET")
}
