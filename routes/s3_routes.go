package routes

import (
	"sparq_server/controllers"
	"sparq_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for photo storage presigning
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	r.HandleFunc("/generate-presigned-url", controller.HandleGeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.HandleGetPresignedReadURL).Methods("POST")
}
