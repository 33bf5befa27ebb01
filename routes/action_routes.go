package routes

import (
	"sparq_server/controllers"
	"sparq_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for feed actions under /api/actions
func RegisterActionRoutes(r *mux.Router, engine *services.MatchmakingService, likes services.LikeStore) {
	controller := controllers.NewActionController(engine, likes)

	actionRouter := r.PathPrefix("/api/actions").Subrouter()
	actionRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	actionRouter.HandleFunc("/unsave", controller.HandleUnsave).Methods("POST")
}
