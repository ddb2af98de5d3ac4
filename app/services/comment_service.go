package services

import (
	"fmt"

	"microblog/app/models"
	"microblog/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a new comment on the given post. The parent
// post must exist; its absence surfaces as repositories.ErrNotFound.
func (s *CommentService) CreateComment(content, ownerEmail string, postID int) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   content,
		UserEmail: ownerEmail,
		PostID:    postID,
	}
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListComments retrieves all comments
func (s *CommentService) ListComments() ([]*models.Comment, error) {
	return s.commentRepo.List()
}

// ListPostComments retrieves all comments for a post. The post must exist.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}

// DeleteComment deletes a comment by ID
func (s *CommentService) DeleteComment(id int) error {
	return s.commentRepo.Delete(id)
}
