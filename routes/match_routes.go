package routes

import (
	"sparq_server/controllers"
	"sparq_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match lookups under /api/matches
func RegisterMatchRoutes(r *mux.Router, matches services.MatchStore) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("/{userHandle}", controller.HandleGetMatches).Methods("GET")
}
