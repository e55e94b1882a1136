package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"otherhalf_server/services"
)

// MediaController handles avatar ingestion and S3 presigning.
type MediaController struct {
	Media *services.MediaService
}

func NewMediaController(media *services.MediaService) *MediaController {
	return &MediaController{Media: media}
}

// HandleUploadAvatar accepts a multipart image upload and returns it as a
// data-URL string, mirroring the client-side file reader.
func (c *MediaController) HandleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, `{"error": "avatar file is required"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read avatar upload: %v", err)
		http.Error(w, `{"error": "Failed to read upload"}`, http.StatusInternalServerError)
		return
	}

	dataURL := c.Media.AvatarDataURL(header.Header.Get("Content-Type"), data)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"dataUrl": dataURL})
}

// HandleGetUploadURL returns a presigned S3 PUT URL for an avatar.
func (c *MediaController) HandleGetUploadURL(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")
	if fileName == "" || fileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	uploadURL, key, err := c.Media.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		log.Printf("Failed to presign upload: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"uploadUrl": uploadURL, "key": key})
}

// HandleGetReadURL returns a presigned S3 GET URL for an uploaded avatar.
func (c *MediaController) HandleGetReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	readURL, err := c.Media.GenerateReadURL(r.Context(), key)
	if err != nil {
		log.Printf("Failed to presign read: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"readUrl": readURL})
}
