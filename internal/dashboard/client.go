package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/maheshrc27/adspark/internal/models"
)

// ErrUnauthenticated is returned when the server answers with the login redirect.
var ErrUnauthenticated = errors.New("not logged in")

// APIError carries the {"error": ...} body of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// PostsClient calls the dashboard's own JSON endpoints. The session cookie set by Login
// is kept in the client's jar for every later call.
type PostsClient struct {
	baseURL string
	http    *http.Client
}

func NewPostsClient(baseURL string, timeout time.Duration) (*PostsClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &PostsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

func (c *PostsClient) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp, "Login failed")
	}
	return nil
}

func (c *PostsClient) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

func (c *PostsClient) List(ctx context.Context) ([]*models.SocialMediaPost, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/posts", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp, "Failed to fetch posts")
	}

	posts := []*models.SocialMediaPost{}
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("error parsing posts: %w", err)
	}
	return posts, nil
}

func (c *PostsClient) Get(ctx context.Context, id string) (*models.SocialMediaPost, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp, "Failed to fetch post")
	}

	var post models.SocialMediaPost
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("error parsing post: %w", err)
	}
	return &post, nil
}

func (c *PostsClient) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp, "Failed to delete post.")
	}
	return nil
}

func (c *PostsClient) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		resp.Body.Close()
		return nil, ErrUnauthenticated
	}
	return resp, nil
}

// readAPIError uses the body's "error" field when there is one, fallback otherwise.
func readAPIError(resp *http.Response, fallback string) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = fallback
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
