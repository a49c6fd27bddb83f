package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

// Upload accepts one image in the "file" multipart field, stores a
// sanitized copy and answers with its public URL. Admin only.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Public.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.Public.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Upload is too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Malformed multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if mime := header.Header.Get("Content-Type"); !slices.Contains(h.cfg.Public.AllowedImageMimes, mime) {
		http.Error(w, "Unsupported file type", http.StatusBadRequest)
		return
	}

	url, err := h.media.SaveImage(file)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, UploadResponse{Url: url})
}
