package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/utils"
	"github.com/MKhiriev/where-is-it/models"
)

func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Started Where Is It Server"))
}

func (h *Handler) totalPostsCount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count, err := h.services.PostService.Count(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.totalPostsCount").Msg("error counting posts")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResult{Count: count}, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, err := queryInt(r, "page", 0)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("invalid `page` query parameter")
		http.Error(w, "invalid `page` query parameter", http.StatusBadRequest)
		return
	}
	size, err := queryInt(r, "size", 0)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("invalid `size` query parameter")
		http.Error(w, "invalid `size` query parameter", http.StatusBadRequest)
		return
	}

	posts, err := h.services.PostService.ListPage(r.Context(), page, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("error listing posts")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) filteredItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.filteredItems").Msg("error searching posts")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) latestPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListLatest(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.latestPosts").Msg("error listing latest posts")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getItem").Msg("error getting post")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// owner identity always comes from the session, never from the body
	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	post.UserEmail = email

	created, err := h.services.PostService.CreatePost(r.Context(), post)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.createItem").Msg("error creating post")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.InsertResult{InsertedID: created.PostID}, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	matched, err := h.services.PostService.UpdatePost(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.updateItem").Msg("error updating post")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.UpdateResult{MatchedCount: matched}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	deleted, err := h.services.PostService.DeletePost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.deleteItem").Msg("error deleting post")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.DeleteResult{DeletedCount: deleted}, http.StatusOK)
}

func (h *Handler) myItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListByOwner(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.myItems").Msg("error listing user's posts")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// queryInt parses an optional integer query parameter. An absent parameter
// yields fallback; a present but non-numeric value is an error.
func queryInt(r *http.Request, name string, fallback int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
