// Package automation talks to the external workflow that generates and publishes posts.
// Neither call is retried.
package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultApprovedMessage = "Post approved successfully."
	DefaultApprovalFailed  = "Approval failed."
	FallbackErrorMessage   = "Something went wrong."
	RequestIDHeader        = "X-Request-ID"
)

type Client struct {
	http       *http.Client
	approveURL string
	createURL  string
	wg         sync.WaitGroup
}

func NewClient(cfg config.Webhooks) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		approveURL: cfg.ApproveURL,
		createURL:  cfg.CreatePostURL,
	}
}

// ApprovePost asks the workflow to publish a record. It never returns an error: every
// outcome, including a transport failure, becomes a result the user can read.
func (c *Client) ApprovePost(ctx context.Context, recordID string) transfer.ApprovalResult {
	result := transfer.ApprovalResult{PostID: recordID}

	resp, err := c.post(ctx, c.approveURL, transfer.ApproveRequest{RecordID: recordID})
	if err != nil {
		slog.Info(err.Error())
		result.Message = errorMessage(err)
		return result
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Info(err.Error())
		result.Message = errorMessage(err)
		return result
	}

	result.Success, result.Message = parseApproval(body)
	return result
}

// parseApproval reads the webhook reply. Only a literal true in "success" counts, the
// HTTP status is ignored. A body that is not JSON is shown verbatim as the failure.
func parseApproval(body []byte) (bool, string) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		if text := string(body); strings.TrimSpace(text) != "" {
			return false, text
		}
		return false, DefaultApprovalFailed
	}

	obj, _ := data.(map[string]any)
	success := obj["success"] == true

	for _, key := range []string{"message", "msg"} {
		if v, ok := obj[key]; ok && v != nil {
			if s, ok := v.(string); ok {
				return success, s
			}
			return success, fmt.Sprint(v)
		}
	}

	if success {
		return true, DefaultApprovedMessage
	}
	return false, DefaultApprovalFailed
}

// DispatchCreate fires the create request and returns immediately. The outcome is only
// logged; the dashboard learns about the new post from its next refetch.
func (c *Client) DispatchCreate(req transfer.CreatePostRequest) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		resp, err := c.post(context.Background(), c.createURL, req)
		if err != nil {
			slog.Info(err.Error())
			return
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		slog.Info("create post dispatched", "status", resp.StatusCode, "request_id", resp.Request.Header.Get(RequestIDHeader))
	}()
}

// Wait blocks until every dispatched create request has finished.
func (c *Client) Wait() {
	c.wg.Wait()
}

func (c *Client) post(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	req.Header.Set(RequestIDHeader, id)

	return c.http.Do(req)
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return FallbackErrorMessage
	}
	return err.Error()
}
