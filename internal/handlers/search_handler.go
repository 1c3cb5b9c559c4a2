package handlers

import (
	"errors"
	"log"
	"net/http"

	"bookshelf/internal/dto"
	"bookshelf/internal/services"
	"bookshelf/utils/response"
)

type SearchHandler struct {
	service *services.SearchService
	logger  *log.Logger
}

func NewSearchHandler(source services.VolumeSource, maxResults int, logger *log.Logger) *SearchHandler {
	return &SearchHandler{
		service: services.NewSearchService(source, maxResults),
		logger:  logger,
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		var uerr *services.UpstreamError
		switch {
		case errors.Is(err, services.ErrEmptyQuery):
			response.Error(w, http.StatusBadRequest, "No search query provided")
		case errors.As(err, &uerr):
			h.logger.Printf("catalog search failed: %v", uerr)
			response.Error(w, http.StatusInternalServerError, uerr.Error())
		default:
			response.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.SearchResponse{Results: results})
}
