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

// CommentController handles HTTP requests for comments
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Index handles listing all comments
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.comments.ListComments()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	sendJSON(w, http.StatusOK, newCommentResponses(comments))
}

// Show handles displaying a single comment
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Comment not found")
		return
	}

	comment, err := cc.comments.GetComment(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Comment not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to fetch comment")
		}
		return
	}
	sendJSON(w, http.StatusOK, newCommentResponse(comment))
}

// ListForPost handles listing the comments attached to one post
func (cc *CommentController) ListForPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	comments, err := cc.comments.ListPostComments(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Post not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to fetch comments")
		}
		return
	}
	sendJSON(w, http.StatusOK, newCommentResponses(comments))
}

// Create handles creating a new comment on the post named in the URL
// path. The authenticated user's email becomes the owner field.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}

	var req CommentCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := cc.comments.CreateComment(req.Content, user.Email, postID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, http.StatusNotFound, "Post not found")
		case isValidationError(err):
			sendError(w, http.StatusUnprocessableEntity, "Validation failed: "+err.Error())
		default:
			sendError(w, http.StatusInternalServerError, "Failed to create comment")
		}
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Comment added successfully",
		"comment_id": comment.ID,
	})
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, http.StatusNotFound, "Comment not found")
		return
	}

	if err := cc.comments.DeleteComment(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Comment not found")
		} else {
			sendError(w, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
