package services

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/catalog"
	"bookshelf/internal/dto"
)

var ErrEmptyQuery = errors.New("no search query provided")

const unknownAuthor = "Unknown"

type VolumeSource interface {
	Volumes(ctx context.Context, query string, maxResults int) ([]catalog.Volume, error)
}

type SearchService struct {
	source     VolumeSource
	maxResults int
}

func NewSearchService(source VolumeSource, maxResults int) *SearchService {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &SearchService{source: source, maxResults: maxResults}
}

func (s *SearchService) Search(ctx context.Context, query string) ([]dto.BookSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	volumes, err := s.source.Volumes(ctx, query, s.maxResults)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	results := make([]dto.BookSuggestion, 0, len(volumes))
	for _, v := range volumes {
		results = append(results, suggestionFrom(v.VolumeInfo))
	}
	return results, nil
}

func suggestionFrom(info catalog.VolumeInfo) dto.BookSuggestion {
	s := dto.BookSuggestion{
		Author: unknownAuthor,
		Genre:  strings.Join(info.Categories, ", "),
	}
	if info.Title != nil {
		s.Title = *info.Title
	}
	if len(info.Authors) > 0 {
		s.Author = strings.Join(info.Authors, ", ")
	}
	if info.Description != nil {
		s.Description = *info.Description
	}
	if info.ImageLinks != nil {
		s.CoverURL = secureURL(info.ImageLinks.Thumbnail)
	}
	return s
}

func secureURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "http://"); ok {
		return "https://" + rest
	}
	return raw
}
