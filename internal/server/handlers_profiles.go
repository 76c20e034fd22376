package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meera/wardrobe-stylist/internal/db"
)

// CreateProfileRequest is the payload for creating a household profile.
type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// handleListProfiles returns every profile.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.db.ListProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profiles == nil {
		profiles = []db.Profile{}
	}
	s.jsonResponse(w, http.StatusOK, profiles)
}

// handleCreateProfile creates a regular profile.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.CreateProfile(r.Context(), req.Name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, profile)
}

// handleDeleteProfile removes a profile and its stored item photos. The route
// is owner-token protected.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{ProfileID: profileID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	images, err := s.db.DeleteProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	for _, image := range images {
		if err := s.uploads.Remove(image); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("image", image).Msg("failed to remove item photo")
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Profile deleted"})
}
