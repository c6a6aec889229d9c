// Package webhook delivers keyword-match notifications as JSON POSTs.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JTechhub/seoul-metro-monitor/pkg/board"
)

// Payload is the JSON document posted to the webhook for each matched post.
type Payload struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Link      string `json:"link"`
	Keyword   string `json:"keyword"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Sender posts match notifications to a single webhook endpoint.
type Sender struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// New creates a webhook sender.
func New(url string, client *http.Client, logger *slog.Logger) *Sender {
	return &Sender{
		url:    url,
		client: client,
		logger: logger,
	}
}

// Notify posts one matched post to the webhook. Success is strictly HTTP 200;
// anything else is an error and the post is not retried.
func (s *Sender) Notify(ctx context.Context, post board.Post, keyword string) error {
	payload := Payload{
		Title:     post.Title,
		Date:      post.Date,
		Link:      post.Link,
		Keyword:   keyword,
		Message:   fmt.Sprintf("키워드 '%s' 매칭: %s", keyword, post.Title),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	s.logger.Info("Webhook request starting",
		"method", "POST",
		"title", post.Title,
		"keyword", keyword)

	startTime := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Warn("Webhook request failed",
			"title", post.Title,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return fmt.Errorf("send webhook: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		detail := strings.TrimSpace(string(snippet))
		s.logger.Warn("Webhook returned non-OK status",
			"status_code", resp.StatusCode,
			"response", detail,
			"title", post.Title)
		if detail != "" {
			return fmt.Errorf("webhook returned HTTP %d: %s", resp.StatusCode, detail)
		}
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}

	s.logger.Info("Webhook request completed",
		"title", post.Title,
		"keyword", keyword,
		"duration_ms", duration.Milliseconds(),
		"status", "success")

	return nil
}
