package server

import (
	"encoding/json"
	"log"
	"net/http"

	"podosite/internal/cache"
)

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if payload, ok := s.Cache.Get(ctx, cache.KeyServices); ok {
		writeJSONRaw(w, http.StatusOK, payload)
		return
	}

	services, err := s.Services.List(ctx)
	if err != nil {
		log.Printf("services: list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching services")
		return
	}

	payload, err := json.Marshal(services)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching services")
		return
	}
	s.Cache.Set(ctx, cache.KeyServices, payload)
	writeJSONRaw(w, http.StatusOK, payload)
}

// handleServicesVersion lets the client cheaply poll for catalog changes.
func (s *Server) handleServicesVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if payload, ok := s.Cache.Get(ctx, cache.KeyServicesVersion); ok {
		writeJSONRaw(w, http.StatusOK, payload)
		return
	}

	version, err := s.Services.Version(ctx)
	if err != nil {
		log.Printf("services: version failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching version")
		return
	}
	if version == "" {
		version = "none"
	}

	payload, _ := json.Marshal(map[string]string{"version": version})
	s.Cache.Set(ctx, cache.KeyServicesVersion, payload)
	writeJSONRaw(w, http.StatusOK, payload)
}

type serviceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	svc, err := s.Services.Create(ctx, req.Name, req.Description, req.Price, req.Category)
	if err != nil {
		log.Printf("services: create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error creating service")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeyServices, cache.KeyServicesVersion)
	writeJSON(w, http.StatusOK, svc)
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	var req serviceRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	svc, err := s.Services.Update(ctx, id, req.Name, req.Description, req.Price, req.Category)
	if err != nil {
		log.Printf("services: update %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error updating service")
		return
	}
	if svc == nil {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeyServices, cache.KeyServicesVersion)
	writeJSON(w, http.StatusOK, svc)
}

func (s *Server) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	deleted, err := s.Services.Delete(ctx, id)
	if err != nil {
		log.Printf("services: delete %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error deleting service")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeyServices, cache.KeyServicesVersion)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted"})
}
