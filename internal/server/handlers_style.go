package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/meera/wardrobe-stylist/internal/stylist"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

// StyleRequest asks for an outfit suggestion.
type StyleRequest struct {
	ProfileID uuid.UUID `json:"profile_id" validate:"required"`
	Occasion  string    `json:"occasion" validate:"required,max=500"`
	City      string    `json:"city" validate:"max=100"`
}

// WeatherResponse pairs the current conditions with the styling tip derived
// from them.
type WeatherResponse struct {
	Weather *weather.Weather `json:"weather"`
	Advice  string           `json:"advice,omitempty"`
}

// handleStyle runs the full outfit suggestion flow for a profile.
func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	var req StyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.GetProfile(r.Context(), req.ProfileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{ProfileID: req.ProfileID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	city := req.City
	if city == "" {
		city = s.defaultCity
	}

	result, err := s.stylist.Suggest(r.Context(), stylist.Request{
		ProfileID:   profile.ID,
		ProfileName: profile.Name,
		Occasion:    req.Occasion,
		City:        city,
	})
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleWeather returns current conditions and the derived styling tip for a
// city.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := r.PathValue("city")
	if city == "" {
		s.errorResponse(w, http.StatusBadRequest, "city is required")
		return
	}

	current, err := s.weather.Current(r.Context(), city)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, WeatherResponse{
		Weather: current,
		Advice:  weather.Advice(current),
	})
}
