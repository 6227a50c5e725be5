package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"postcard/app/components/postcard"
	"postcard/app/locale"
	"postcard/app/logging"
	"postcard/app/models"
	"postcard/app/repositories"
	"postcard/app/services"
	"postcard/app/views"
)

// Cards builds post cards from the services and renders them.
type Cards struct {
	Posts          *services.PostService
	Comments       *services.CommentService
	Templates      *template.Template
	Locale         *locale.Locale
	InvalidMessage string
	Logger         *slog.Logger
	// Now is the clock used for relative timestamps.
	Now func() time.Time
}

// NewCards wires a Cards with the real clock. An empty invalidMessage
// falls back to the locale's label.
func NewCards(posts *services.PostService, comments *services.CommentService, loc *locale.Locale, invalidMessage string, logger *slog.Logger) (*Cards, error) {
	templates, err := views.Load(loc)
	if err != nil {
		return nil, err
	}
	if invalidMessage == "" {
		invalidMessage = loc.Label(locale.LabelInvalidComment)
	}
	return &Cards{
		Posts:          posts,
		Comments:       comments,
		Templates:      templates,
		Locale:         loc,
		InvalidMessage: invalidMessage,
		Logger:         logger,
		Now:            time.Now,
	}, nil
}

// Load returns a fresh card for the post with its stored comments.
func (c *Cards) Load(postID string) (*postcard.Card, error) {
	post, err := c.Posts.GetPost(postID)
	if err != nil {
		return nil, err
	}
	return c.forPost(post)
}

func (c *Cards) forPost(post *models.Post) (*postcard.Card, error) {
	comments, err := c.Comments.ListPostComments(post.ID)
	if err != nil {
		return nil, err
	}
	return postcard.New(post, comments, c.Comments, c.InvalidMessage), nil
}

func (c *Cards) viewsOf(cards []*postcard.Card) []postcard.View {
	now := c.Now()
	out := make([]postcard.View, 0, len(cards))
	for _, card := range cards {
		out = append(out, card.View(c.Locale, now))
	}
	return out
}

type pageData struct {
	Lang  string
	Title string
	Cards []postcard.View
}

// renderPage writes the full layout for cards with the given status.
func (c *Cards) renderPage(w http.ResponseWriter, r *http.Request, status int, title string, cards ...*postcard.Card) {
	data := pageData{
		Lang:  strings.ReplaceAll(c.Locale.Tag(), "_", "-"),
		Title: title,
		Cards: c.viewsOf(cards),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Templates.ExecuteTemplate(w, views.Layout, data); err != nil {
		c.logger(r).Error("template error", "template", views.Layout, "error", err)
	}
}

// renderForm writes only the comment form of card.
func (c *Cards) renderForm(w http.ResponseWriter, r *http.Request, card *postcard.Card) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Templates.ExecuteTemplate(w, views.CommentForm, card.View(c.Locale, c.Now())); err != nil {
		c.logger(r).Error("template error", "template", views.CommentForm, "error", err)
	}
}

func (c *Cards) logger(r *http.Request) *slog.Logger {
	base := c.Logger
	if base == nil {
		base = slog.Default()
	}
	return logging.FromContext(r.Context(), base)
}

// Helper methods for consistent response handling

func isAPI(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrEmptyComment):
		return http.StatusUnprocessableEntity
	case models.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (c *Cards) errorMessage(err error) string {
	if models.IsValidationError(err) {
		return models.ValidationSummary(err, c.Locale.Tag())
	}
	return err.Error()
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (c *Cards) sendError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.logger(r).Error("request failed", "error", err)
	}
	message := c.errorMessage(err)
	if isAPI(r) {
		sendJSON(w, status, map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}
