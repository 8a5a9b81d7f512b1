package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/maheshrc27/adspark/internal/models"
	"github.com/maheshrc27/adspark/internal/repository"
)

type PostService interface {
	List(ctx context.Context) ([]*models.SocialMediaPost, error)
	PostInfo(ctx context.Context, postID string) (*models.SocialMediaPost, error)
	Remove(ctx context.Context, postID string) error
}

// ImageStore removes generated images that live in our own bucket.
type ImageStore interface {
	Owns(imageURL string) bool
	DeleteImage(ctx context.Context, imageURL string) error
}

type postService struct {
	pr     repository.PostRepository
	images ImageStore
}

// NewPostService wires the post operations. images may be nil when no bucket is
// configured.
func NewPostService(pr repository.PostRepository, images ImageStore) PostService {
	return &postService{
		pr:     pr,
		images: images,
	}
}

func (s *postService) List(ctx context.Context) ([]*models.SocialMediaPost, error) {
	return s.pr.List(ctx)
}

func (s *postService) PostInfo(ctx context.Context, postID string) (*models.SocialMediaPost, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, ErrMissingPostID
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		slog.Info("post lookup missed", "post_id", postID)
		return nil, ErrPostNotFound
	}

	return post, nil
}

// Remove deletes the row. A second delete of the same id reports ErrPostNotFound.
func (s *postService) Remove(ctx context.Context, postID string) error {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return ErrMissingPostID
	}

	deleted, err := s.pr.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if deleted == nil {
		slog.Info("delete matched no rows", "post_id", postID)
		return ErrPostNotFound
	}

	s.removeImage(ctx, deleted)
	return nil
}

func (s *postService) removeImage(ctx context.Context, deleted *repository.DeletedPost) {
	if s.images == nil || deleted.GeneratedImageURL == "" || !s.images.Owns(deleted.GeneratedImageURL) {
		return
	}
	if err := s.images.DeleteImage(ctx, deleted.GeneratedImageURL); err != nil {
		slog.Error("failed to remove generated image", "post_id", deleted.ID, "url", deleted.GeneratedImageURL, "error", err.Error())
	}
}
