package handlers

import (
	"log"
	"net/http"
	"strconv"

	"bookshelf/internal/middleware"
	"bookshelf/internal/models"
	"bookshelf/internal/session"
	"bookshelf/internal/views"
)

// pages is shared by the HTML handlers: it merges queued flash notices with
// the ones raised by the current request and renders the page.
type pages struct {
	sessions *session.Manager
	views    *views.Renderer
	logger   *log.Logger
}

func (p *pages) render(w http.ResponseWriter, r *http.Request, status int, name string, page views.Page, notices ...session.Flash) {
	page.Flashes = append(p.sessions.PopFlashes(w, r), notices...)
	if err := p.views.Render(w, status, name, page); err != nil {
		p.internalError(w, err)
	}
}

func (p *pages) redirect(w http.ResponseWriter, r *http.Request, to string, kind session.FlashKind, message string) {
	p.sessions.AddFlash(w, r, kind, message)
	http.Redirect(w, r, to, http.StatusFound)
}

func (p *pages) internalError(w http.ResponseWriter, err error) {
	p.logger.Printf("internal error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func errorNotice(message string) session.Flash {
	return session.Flash{Kind: session.FlashError, Message: message}
}

// pathID parses the {id} wildcard; anything but a positive integer is a 404.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requestIdentity reads the identity RequireAuth stored on the request.
func requestIdentity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
	}
	return identity, ok
}
