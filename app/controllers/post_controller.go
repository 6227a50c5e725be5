package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"postcard/app/components/postcard"
	"postcard/app/models"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	cards *Cards
}

// NewPostController creates a new PostController
func NewPostController(cards *Cards) *PostController {
	return &PostController{cards: cards}
}

// Index renders every post as a card
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.cards.Posts.ListPosts()
	if err != nil {
		pc.cards.sendError(w, r, fmt.Errorf("failed to fetch posts: %w", err))
		return
	}

	cards := make([]*postcard.Card, 0, len(posts))
	for _, post := range posts {
		card, err := pc.cards.forPost(post)
		if err != nil {
			pc.cards.sendError(w, r, err)
			return
		}
		cards = append(cards, card)
	}

	if isAPI(r) {
		sendJSON(w, http.StatusOK, map[string]interface{}{
			"posts": pc.cards.viewsOf(cards),
		})
		return
	}
	pc.cards.renderPage(w, r, http.StatusOK, "Posts", cards...)
}

// Show renders a single post card
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	card, err := pc.cards.Load(mux.Vars(r)["id"])
	if err != nil {
		pc.cards.sendError(w, r, err)
		return
	}

	if isAPI(r) {
		sendJSON(w, http.StatusOK, card.View(pc.cards.Locale, pc.cards.Now()))
		return
	}
	pc.cards.renderPage(w, r, http.StatusOK, card.Post().Author.Name, card)
}

// Create stores a post sent as JSON
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
		return
	}

	if err := pc.cards.Posts.CreatePost(&post); err != nil {
		pc.cards.sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}
