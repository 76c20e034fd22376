package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meera/wardrobe-stylist/internal/db"
	"github.com/meera/wardrobe-stylist/internal/uploads"
	"github.com/meera/wardrobe-stylist/internal/vision"
)

const maxUploadBytes = 10 << 20

// FallbackCategory is stored when neither the client nor the classifier
// produced a category.
const FallbackCategory = "Uncategorized"

// AnalyzeResponse is the reply for classify-without-saving requests.
type AnalyzeResponse struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Attributes *vision.Attributes `json:"attributes"`
}

// handleListItems returns every wardrobe item across all profiles.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.db.ListItems(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []db.Item{}
	}
	s.jsonResponse(w, http.StatusOK, items)
}

// handleListProfileItems returns one profile's wardrobe.
func (s *Server) handleListProfileItems(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	items, err := s.db.ListItemsByProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []db.Item{}
	}
	s.jsonResponse(w, http.StatusOK, items)
}

// handleCreateItem adds a wardrobe item from a multipart form: profile_id,
// optional name and category, optional photo. When name or category is
// missing and a photo was sent, the classifier fills the gaps.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	profileID, err := uuid.Parse(r.FormValue("profile_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile_id")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	category := strings.TrimSpace(r.FormValue("category"))

	var imageName *string
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		stored, saveErr := s.uploads.Save(profileID.String(), header.Filename, file)
		if saveErr != nil {
			s.errorResponse(w, http.StatusInternalServerError, saveErr.Error())
			return
		}
		imageName = &stored

		if name == "" || category == "" {
			attrs, classifyErr := s.classifyStored(r, stored)
			if classifyErr != nil {
				zerolog.Ctx(r.Context()).Warn().Err(classifyErr).Msg("classification failed, using fallbacks")
			} else {
				if name == "" {
					name = vision.ComposeName(*attrs)
				}
				if category == "" {
					category = attrs.Category
				}
			}
		}
	}

	if name == "" {
		name = fmt.Sprintf("item_%s", uuid.New().String()[:6])
	}
	if category == "" {
		category = FallbackCategory
	}

	item, err := s.db.AddItem(r.Context(), name, category, profileID, imageName)
	if err != nil {
		if imageName != nil {
			_ = s.uploads.Remove(*imageName)
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, item)
}

// handleAnalyzeItem classifies an uploaded photo without saving an item.
func (s *Server) handleAnalyzeItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	// Stash the photo under a temp name so failures leave nothing behind.
	temp, err := s.uploads.SaveTemp(header.Filename, io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer func() {
		if err := s.uploads.Remove(temp); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("image", temp).Msg("failed to remove temp photo")
		}
	}()

	attrs, err := s.classifyStored(r, temp)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("failed to analyze image: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Name:       vision.ComposeName(*attrs),
		Category:   attrs.Category,
		Attributes: attrs,
	})
}

// handleDeleteItem removes an item by name, optionally scoped to a profile
// via the profile_id query parameter, and deletes its stored photo.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "item name is required")
		return
	}

	var profileID *uuid.UUID
	if raw := r.URL.Query().Get("profile_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid profile_id")
			return
		}
		profileID = &id
	}

	image, deleted, err := s.db.DeleteItemByName(r.Context(), name, profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("item not found: %s", name))
		return
	}

	if image != nil {
		if err := s.uploads.Remove(*image); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("image", *image).Msg("failed to remove item photo")
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// classifyStored reads a saved upload back and classifies it.
func (s *Server) classifyStored(r *http.Request, stored string) (*vision.Attributes, error) {
	data, err := s.uploads.Read(stored)
	if err != nil {
		return nil, err
	}
	return s.classifier.Classify(r.Context(), data, uploads.ImageFormat(stored))
}
