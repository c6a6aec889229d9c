// Package monitor runs a single check of the notice board: fetch, parse,
// filter, notify.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JTechhub/seoul-metro-monitor/filter"
	"github.com/JTechhub/seoul-metro-monitor/pkg/board"
)

// Fetcher interface for retrieving the board page markup.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Parser interface for extracting posts from board markup.
type Parser interface {
	Parse(markup string, now time.Time) []board.Post
}

// Matcher interface for keyword matching against post titles.
type Matcher interface {
	Match(title string) (keyword string, ok bool)
}

// Notifier interface for delivering match notifications.
type Notifier interface {
	Notify(ctx context.Context, post board.Post, keyword string) error
}

// Summary reports what a single run saw and did.
type Summary struct {
	PostsFound int // rows parsed into posts
	TodayPosts int // posts dated today
	Matches    int // today's posts whose title hit a keyword
	Notified   int // notifications delivered
	Failed     int // notifications attempted but not delivered
}

// Monitor handles the board checking logic.
type Monitor struct {
	fetcher  Fetcher
	parser   Parser
	matcher  Matcher
	notifier Notifier
	logger   *slog.Logger
}

// New creates a new board monitor.
func New(fetcher Fetcher, parser Parser, matcher Matcher, notifier Notifier, logger *slog.Logger) *Monitor {
	return &Monitor{
		fetcher:  fetcher,
		parser:   parser,
		matcher:  matcher,
		notifier: notifier,
		logger:   logger,
	}
}

// Run performs one complete check. The returned error reports a failed fetch;
// notification failures are counted in the summary instead so that one bad
// post never blocks the rest.
func (m *Monitor) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	now := time.Now()

	m.logger.Info("Starting board check", "timestamp", now.Format(time.RFC3339))

	markup, err := m.fetcher.Fetch(ctx)
	if err != nil {
		return sum, fmt.Errorf("fetch board: %w", err)
	}

	posts := m.parser.Parse(markup, now)
	sum.PostsFound = len(posts)
	m.logger.Info("Board parsed", "posts", len(posts))

	if len(posts) == 0 {
		m.logger.Warn("No posts found, board layout may have changed")
		return sum, nil
	}

	for _, post := range posts {
		if !filter.IsToday(post.Date, now) {
			continue
		}
		sum.TodayPosts++

		keyword, ok := m.matcher.Match(post.Title)
		if !ok {
			continue
		}
		sum.Matches++

		m.logger.Info("Keyword match found",
			"title", post.Title,
			"keyword", keyword,
			"date", post.Date,
			"link", post.Link)

		if err := m.notifier.Notify(ctx, post, keyword); err != nil {
			m.logger.Warn("Notification failed", "title", post.Title, "error", err)
			sum.Failed++
			continue
		}
		sum.Notified++
	}

	m.logger.Info("Board check completed",
		"posts", sum.PostsFound,
		"today_posts", sum.TodayPosts,
		"matches", sum.Matches,
		"notified", sum.Notified,
		"failed", sum.Failed)

	return sum, nil
}
