package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"microblog/app/middleware"
	"microblog/app/repositories"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	posts *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.ListPosts()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	sendJSON(w, http.StatusOK, newPostResponses(posts))
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	post, err := pc.posts.GetPost(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Post not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to fetch post")
		}
		return
	}
	sendJSON(w, http.StatusOK, newPostResponse(post))
}

// Create handles creating a new post. The authenticated user's email
// becomes the owner field.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	var req PostCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := pc.posts.CreatePost(req.Title, req.Content, user.Email)
	if err != nil {
		if isValidationError(err) {
			sendError(w, http.StatusUnprocessableEntity, "Validation failed: "+err.Error())
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post created successfully",
		"post_id": post.ID,
	})
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	if err := pc.posts.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Post not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
