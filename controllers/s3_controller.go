package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"sparq_server/services"
)

// S3Controller hands out presigned URLs for profile photo storage
type S3Controller struct {
	Service *services.S3Service
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(service *services.S3Service) *S3Controller {
	return &S3Controller{Service: service}
}

// HandleGeneratePresignedURL generates a presigned URL for photo uploads
func (sc *S3Controller) HandleGeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	url, key, err := sc.Service.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("❌ Failed to generate upload URL: %v", err)
		http.Error(w, `{"error": "Failed to generate presigned URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// HandleGetPresignedReadURL generates a presigned URL for reading a photo
func (sc *S3Controller) HandleGetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	url, err := sc.Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("❌ Failed to generate read URL: %v", err)
		http.Error(w, `{"error": "Failed to generate presigned URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
