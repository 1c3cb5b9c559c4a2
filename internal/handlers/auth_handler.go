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

type AuthHandler struct {
	pages
	service *services.AuthService
}

func NewAuthHandler(db *database.DB, sessions *session.Manager, renderer *views.Renderer, logger *log.Logger) *AuthHandler {
	return &AuthHandler{
		pages:   pages{sessions: sessions, views: renderer, logger: logger},
		service: services.NewAuthService(db),
	}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.LoginPage, views.Page{HideNav: true})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := credentialsForm(r)

	user, err := h.service.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.render(w, r, http.StatusUnauthorized, views.LoginPage,
				views.Page{HideNav: true, Username: form.Username},
				errorNotice("Invalid username or password"))
			return
		}
		h.internalError(w, err)
		return
	}

	if err := h.sessions.Start(w, user.ID); err != nil {
		h.internalError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.SignupPage, views.Page{HideNav: true})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	form := credentialsForm(r)
	page := views.Page{HideNav: true, Username: form.Username}

	_, err := h.service.Signup(r.Context(), form.Username, form.Password)
	var verr *services.ValidationError
	switch {
	case err == nil:
		h.redirect(w, r, "/login", session.FlashSuccess, "Account created successfully! Please login.")
	case errors.As(err, &verr):
		h.render(w, r, http.StatusUnprocessableEntity, views.SignupPage, page, errorNotice(verr.Message))
	case errors.Is(err, services.ErrDuplicateUsername):
		h.render(w, r, http.StatusConflict, views.SignupPage, page, errorNotice("Username already exists"))
	default:
		h.internalError(w, err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func credentialsForm(r *http.Request) dto.CredentialsForm {
	return dto.CredentialsForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
}
