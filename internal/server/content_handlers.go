package server

import (
	"encoding/json"
	"log"
	"net/http"

	"podosite/internal/cache"
	"podosite/internal/content"
)

func (s *Server) handleGetSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if payload, ok := s.Cache.Get(ctx, cache.KeySiteConfig); ok {
		writeJSONRaw(w, http.StatusOK, payload)
		return
	}

	cfg, err := s.Site.Get(ctx)
	if err != nil {
		log.Printf("config: get failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching config")
		return
	}

	var payload []byte
	if cfg == nil {
		// No row yet: the frontend expects an empty object, not null.
		payload = []byte("{}")
	} else {
		payload, err = json.Marshal(cfg)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error fetching config")
			return
		}
	}

	s.Cache.Set(ctx, cache.KeySiteConfig, payload)
	writeJSONRaw(w, http.StatusOK, payload)
}

func (s *Server) handleUpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	// Decoding into the model silently drops id/updatedAt from the payload;
	// the repository always writes the singleton row.
	var req content.SiteConfig
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	cfg, err := s.Site.Upsert(ctx, req)
	if err != nil {
		log.Printf("config: upsert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error updating config")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeySiteConfig)
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleListSuccessCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if payload, ok := s.Cache.Get(ctx, cache.KeySuccessCases); ok {
		writeJSONRaw(w, http.StatusOK, payload)
		return
	}

	cases, err := s.Cases.List(ctx)
	if err != nil {
		log.Printf("success-cases: list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching success cases")
		return
	}

	payload, err := json.Marshal(cases)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching success cases")
		return
	}
	s.Cache.Set(ctx, cache.KeySuccessCases, payload)
	writeJSONRaw(w, http.StatusOK, payload)
}

type successCaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBefore string `json:"imageBefore"`
	ImageAfter  string `json:"imageAfter"`
}

func (s *Server) handleCreateSuccessCase(w http.ResponseWriter, r *http.Request) {
	var req successCaseRequest
	if err := decodeJSON(r, &req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	sc, err := s.Cases.Create(ctx, req.Title, req.Description, req.ImageBefore, req.ImageAfter)
	if err != nil {
		log.Printf("success-cases: create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error creating success case")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeySuccessCases)
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleUpdateSuccessCase(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	var req successCaseRequest
	if err := decodeJSON(r, &req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	sc, err := s.Cases.Update(ctx, id, req.Title, req.Description, req.ImageBefore, req.ImageAfter)
	if err != nil {
		log.Printf("success-cases: update %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error updating success case")
		return
	}
	if sc == nil {
		writeError(w, http.StatusNotFound, "Success case not found")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeySuccessCases)
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleDeleteSuccessCase(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	deleted, err := s.Cases.Delete(ctx, id)
	if err != nil {
		log.Printf("success-cases: delete %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error deleting success case")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Success case not found")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeySuccessCases)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Success case deleted"})
}

func (s *Server) handleListAboutCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if payload, ok := s.Cache.Get(ctx, cache.KeyAboutCards); ok {
		writeJSONRaw(w, http.StatusOK, payload)
		return
	}

	cards, err := s.Cards.List(ctx)
	if err != nil {
		log.Printf("about-cards: list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching about cards")
		return
	}

	payload, err := json.Marshal(cards)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching about cards")
		return
	}
	s.Cache.Set(ctx, cache.KeyAboutCards, payload)
	writeJSONRaw(w, http.StatusOK, payload)
}

type aboutCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Position    int    `json:"position"`
}

func (s *Server) handleCreateAboutCard(w http.ResponseWriter, r *http.Request) {
	var req aboutCardRequest
	if err := decodeJSON(r, &req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	card, err := s.Cards.Create(ctx, req.Title, req.Description, req.Icon, req.Position)
	if err != nil {
		log.Printf("about-cards: create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error creating about card")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeyAboutCards)
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleUpdateAboutCard(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	var req aboutCardRequest
	if err := decodeJSON(r, &req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	card, err := s.Cards.Update(ctx, id, req.Title, req.Description, req.Icon, req.Position)
	if err != nil {
		log.Printf("about-cards: update %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error updating about card")
		return
	}
	if card == nil {
		writeError(w, http.StatusNotFound, "About card not found")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeyAboutCards)
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleDeleteAboutCard(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	deleted, err := s.Cards.Delete(ctx, id)
	if err != nil {
		log.Printf("about-cards: delete %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error deleting about card")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "About card not found")
		return
	}

	s.Cache.Invalidate(ctx, cache.KeyAboutCards)
	writeJSON(w, http.StatusOK, map[string]string{"message": "About card deleted"})
}
