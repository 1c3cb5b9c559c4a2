package handlers

import (
	"errors"
	"log"
	"net/http"

	"bookshelf/internal/database"
	"bookshelf/internal/dto"
	"bookshelf/internal/services"
	"bookshelf/internal/session"
	"bookshelf/internal/views"
)

type BookHandler struct {
	pages
	service *services.BookService
}

func NewBookHandler(db *database.DB, sessions *session.Manager, renderer *views.Renderer, logger *log.Logger) *BookHandler {
	return &BookHandler{
		pages:   pages{sessions: sessions, views: renderer, logger: logger},
		service: services.NewBookService(db),
	}
}

func (h *BookHandler) Index(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	books, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.render(w, r, http.StatusOK, views.IndexPage, views.Page{Books: books})
}

func (h *BookHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.AddPage, views.Page{})
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	in := bookInput(r)
	_, err := h.service.Create(r.Context(), identity, in)
	var verr *services.ValidationError
	switch {
	case err == nil:
		h.redirect(w, r, "/", session.FlashSuccess, "Book added successfully!")
	case errors.As(err, &verr):
		h.render(w, r, http.StatusUnprocessableEntity, views.AddPage, views.Page{Form: in}, errorNotice(verr.Message))
	default:
		h.internalError(w, err)
	}
}

func (h *BookHandler) Details(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	book, err := h.service.Get(r.Context(), identity, id)
	if err != nil {
		h.bookError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.DetailsPage, views.Page{Book: book})
}

func (h *BookHandler) Edit(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	book, err := h.service.Get(r.Context(), identity, id)
	if err != nil {
		h.bookError(w, r, err)
		return
	}

	err = h.service.Update(r.Context(), identity, id, bookInput(r))
	var verr *services.ValidationError
	switch {
	case err == nil:
		h.redirect(w, r, "/", session.FlashSuccess, "Book updated successfully!")
	case errors.As(err, &verr):
		h.render(w, r, http.StatusUnprocessableEntity, views.DetailsPage, views.Page{Book: book}, errorNotice(verr.Message))
	default:
		h.internalError(w, err)
	}
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), identity, id); err != nil {
		h.internalError(w, err)
		return
	}
	h.redirect(w, r, "/", session.FlashSuccess, "Book deleted successfully!")
}

func (h *BookHandler) bookError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrBookNotFound) {
		http.NotFound(w, r)
		return
	}
	h.internalError(w, err)
}

func bookInput(r *http.Request) dto.BookInput {
	return dto.BookInput{
		Title:       r.FormValue("title"),
		Author:      r.FormValue("author"),
		Genre:       r.FormValue("genre"),
		Description: r.FormValue("description"),
		CoverURL:    r.FormValue("cover_url"),
	}
}
