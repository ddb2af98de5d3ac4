package services

import (
	"fmt"

	"microblog/app/models"
	"microblog/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a new post owned by the given email
func (s *PostService) CreatePost(title, content, ownerEmail string) (*models.Post, error) {
	post := &models.Post{
		Title:     title,
		Content:   content,
		UserEmail: ownerEmail,
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// DeletePost deletes a post by ID
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}
