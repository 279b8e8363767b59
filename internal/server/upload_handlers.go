package server

import (
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"podosite/internal/assets"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// handleUpload stores an admin-provided image on the asset host and returns
// its public URL plus the object key used for later deletion.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.Assets == nil {
		writeError(w, http.StatusServiceUnavailable, "Almacenamiento no configurado")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Archivo inválido")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Archivo inválido")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "Solo se permiten imágenes")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}

	key := assets.NewObjectKey(ext)
	url, err := s.Assets.Put(r.Context(), key, file, contentType)
	if err != nil {
		log.Printf("upload: put %q failed: %v", key, err)
		writeError(w, http.StatusInternalServerError, "Error uploading image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url": url,
		"key": key,
	})
}

type uploadDeleteRequest struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (s *Server) handleUploadDelete(w http.ResponseWriter, r *http.Request) {
	if s.Assets == nil {
		writeError(w, http.StatusServiceUnavailable, "Almacenamiento no configurado")
		return
	}

	var req uploadDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	key := req.Key
	if key == "" && req.URL != "" {
		// Older clients send the public URL instead of the object key.
		if base := s.Config.Assets.PublicBaseURL; base != "" {
			key = strings.TrimPrefix(strings.TrimPrefix(req.URL, base), "/")
		}
	}
	if key == "" || !strings.HasPrefix(key, "uploads/") {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	if err := s.Assets.Delete(r.Context(), key); err != nil {
		log.Printf("upload: delete %q failed: %v", key, err)
		writeError(w, http.StatusInternalServerError, "Error deleting image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted"})
}
