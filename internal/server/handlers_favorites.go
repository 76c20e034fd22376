package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/meera/wardrobe-stylist/internal/db"
)

// SaveFavoriteRequest is the payload for saving a suggested outfit.
type SaveFavoriteRequest struct {
	ProfileID   uuid.UUID `json:"profile_id" validate:"required"`
	Occasion    string    `json:"occasion" validate:"required,max=255"`
	Items       []string  `json:"items" validate:"required,min=1,dive,required"`
	Explanation string    `json:"explanation"`
}

// handleSaveFavorite stores an outfit the user wants to keep.
func (s *Server) handleSaveFavorite(w http.ResponseWriter, r *http.Request) {
	var req SaveFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	favorite, err := s.db.SaveFavorite(r.Context(), req.ProfileID, req.Occasion, req.Items, req.Explanation)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, favorite)
}

// handleListFavorites returns one profile's saved outfits.
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	favorites, err := s.db.ListFavoritesByProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if favorites == nil {
		favorites = []db.Favorite{}
	}
	s.jsonResponse(w, http.StatusOK, favorites)
}

// handleDeleteFavorite removes a saved outfit.
func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid favorite id")
		return
	}

	deleted, err := s.db.DeleteFavorite(r.Context(), favoriteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("favorite not found: %s", favoriteID))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Favorite deleted"})
}
