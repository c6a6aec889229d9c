// Package scraper handles fetching and parsing the Seoul Metro notice board page.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// StatusError indicates a non-OK HTTP response from the board.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.URL)
}

// Scraper fetches the notice board page.
type Scraper struct {
	client    *http.Client
	boardURL  string
	userAgent string
	logger    *slog.Logger
}

// New creates a new scraper.
func New(client *http.Client, boardURL, userAgent string, logger *slog.Logger) *Scraper {
	return &Scraper{
		client:    client,
		boardURL:  boardURL,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch performs a single GET against the board and returns the raw markup.
// The body is treated as UTF-8 regardless of the declared charset. There is
// no retry; a failed fetch ends the run.
func (s *Scraper) Fetch(ctx context.Context) (string, error) {
	s.logger.Info("HTTP request starting", "method", "GET", "url", s.boardURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.boardURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	// Browser-like headers to avoid getting blocked.
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8")

	startTime := time.Now()
	resp, err := s.client.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Warn("HTTP request failed",
			"url", s.boardURL,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("fetch board page: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	s.logger.Info("HTTP request completed",
		"url", s.boardURL,
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
		"content_length", resp.ContentLength)

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("HTTP request returned non-OK status", "status_code", resp.StatusCode)
		return "", &StatusError{URL: s.boardURL, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	return string(body), nil
}
