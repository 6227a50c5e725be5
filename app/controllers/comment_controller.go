package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"postcard/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles the comment form and comment list of a card
type CommentController struct {
	cards *Cards
}

// NewCommentController creates a new CommentController
func NewCommentController(cards *Cards) *CommentController {
	return &CommentController{cards: cards}
}

type commentRequest struct {
	Content string `json:"content"`
}

// Index lists a post's comments in display order
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.cards.Comments.ListPostComments(mux.Vars(r)["id"])
	if err != nil {
		cc.cards.sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create submits the pending comment text. An empty draft re-renders the
// card with the validation message and leaves the list unchanged.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	card, err := cc.cards.Load(mux.Vars(r)["id"])
	if err != nil {
		cc.cards.sendError(w, r, err)
		return
	}

	api := isAPI(r)
	var draft string
	if api {
		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
			return
		}
		draft = req.Content
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		draft = r.FormValue("comment")
	}

	card.ChangeDraft(draft)
	comment, err := card.Submit()
	switch {
	case errors.Is(err, services.ErrEmptyComment) && !api:
		cc.cards.renderPage(w, r, http.StatusUnprocessableEntity, card.Post().Author.Name, card)
		return
	case errors.Is(err, services.ErrEmptyComment):
		sendJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": card.ValidationMessage()})
		return
	case err != nil:
		cc.cards.sendError(w, r, err)
		return
	}

	if api {
		sendJSON(w, http.StatusCreated, comment)
		return
	}
	http.Redirect(w, r, "/posts/"+card.Post().ID, http.StatusSeeOther)
}

// Draft records a change of the pending text and returns the comment form
// with the submit state derived from it.
func (cc *CommentController) Draft(w http.ResponseWriter, r *http.Request) {
	card, err := cc.cards.Load(mux.Vars(r)["id"])
	if err != nil {
		cc.cards.sendError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	card.ChangeDraft(r.FormValue("comment"))
	cc.cards.renderForm(w, r, card)
}

// Delete removes one comment of a card by its ID
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	card, err := cc.cards.Load(vars["id"])
	if err != nil {
		cc.cards.sendError(w, r, err)
		return
	}

	if err := card.Delete(vars["commentId"]); err != nil {
		cc.cards.sendError(w, r, err)
		return
	}

	if isAPI(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/posts/"+card.Post().ID, http.StatusSeeOther)
}

// DeleteByContent removes every comment of a card whose text equals the
// content query parameter and returns the remaining list.
func (cc *CommentController) DeleteByContent(w http.ResponseWriter, r *http.Request) {
	card, err := cc.cards.Load(mux.Vars(r)["id"])
	if err != nil {
		cc.cards.sendError(w, r, err)
		return
	}

	if err := card.DeleteByContent(r.URL.Query().Get("content")); err != nil {
		cc.cards.sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, card.Comments())
}

// DeleteByID removes a comment addressed only by its ID
func (cc *CommentController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	if err := cc.cards.Comments.DeleteComment(mux.Vars(r)["commentId"]); err != nil {
		cc.cards.sendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
