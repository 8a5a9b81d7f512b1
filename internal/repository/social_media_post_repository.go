package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/maheshrc27/adspark/internal/models"
)

type PostRepository interface {
	List(ctx context.Context) ([]*models.SocialMediaPost, error)
	GetByID(ctx context.Context, id string) (*models.SocialMediaPost, error)
	Delete(ctx context.Context, id string) (*DeletedPost, error)
}

// DeletedPost describes the row a successful Delete removed.
type DeletedPost struct {
	ID                string
	GeneratedImageURL string
}

const selectPostColumns = `SELECT id, keyword, ai_research_output, generated_image_url, social_media_channel, status, scheduled_post_time, posted_at, posted_by, created_at, updated_at
	FROM public.social_media_posts`

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// withConn checks a connection out of the pool for exactly one statement and returns it
// on every exit path.
func (r *postRepository) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer conn.Close()

	return fn(conn)
}

func (r *postRepository) List(ctx context.Context) ([]*models.SocialMediaPost, error) {
	query := selectPostColumns + `
	ORDER BY created_at DESC`

	posts := []*models.SocialMediaPost{}
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			post, err := scanPost(rows)
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
		return rows.Err()
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.SocialMediaPost, error) {
	query := selectPostColumns + `
	WHERE id = $1`

	var post *models.SocialMediaPost
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		post, err = scanPost(conn.QueryRowContext(ctx, query, id))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) (*DeletedPost, error) {
	query := `DELETE FROM public.social_media_posts WHERE id = $1 RETURNING id, generated_image_url`

	var deleted DeletedPost
	var imageURL sql.NullString
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, id).Scan(&deleted.ID, &imageURL)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	deleted.GeneratedImageURL = imageURL.String
	return &deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.SocialMediaPost, error) {
	var post models.SocialMediaPost
	err := row.Scan(
		&post.ID,
		&post.Keyword,
		&post.AIResearchOutput,
		&post.GeneratedImageURL,
		&post.SocialMediaChannel,
		&post.Status,
		&post.ScheduledPostTime,
		&post.PostedAt,
		&post.PostedBy,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
