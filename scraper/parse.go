package scraper

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/JTechhub/seoul-metro-monitor/pkg/board"
)

const dateLayout = "2006-01-02"

// Row skip outcomes, surfaced in debug logs instead of being silently dropped.
const (
	skipTooFewCells = "fewer than 3 cells"
	skipNoTitle     = "no title-like cell"
)

// Parser extracts posts from board page markup.
type Parser struct {
	origin    string // scheme://host of the board, for resolving relative links
	selectors []string
	logger    *slog.Logger
}

// NewParser creates a parser for the board at boardURL. Row selectors are
// tried in order; the first one that yields any rows wins.
func NewParser(boardURL string, selectors []string, logger *slog.Logger) (*Parser, error) {
	u, err := url.Parse(boardURL)
	if err != nil {
		return nil, fmt.Errorf("parse board URL: %w", err)
	}
	return &Parser{
		origin:    u.Scheme + "://" + u.Host,
		selectors: selectors,
		logger:    logger,
	}, nil
}

// Parse extracts posts from the page markup. Markup with no recognizable rows
// yields an empty slice, never an error; now supplies the date for rows
// without a date-like cell.
func (p *Parser) Parse(markup string, now time.Time) []board.Post {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		p.logger.Warn("Failed to parse board markup", "error", err)
		return nil
	}

	rows := p.findRows(doc)
	posts := make([]board.Post, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		post, skip := parseRow(row, p.origin, now)
		if skip != "" {
			p.logger.Debug("Row skipped", "reason", skip)
			return
		}
		posts = append(posts, post)
	})
	return posts
}

// findRows tries each configured selector in order, falling back to every
// table row in the document.
func (p *Parser) findRows(doc *goquery.Document) *goquery.Selection {
	for _, selector := range p.selectors {
		if rows := doc.Find(selector); rows.Length() > 0 {
			return rows
		}
	}
	return doc.Find("tr")
}

// parseRow turns one table row into a post. A non-empty skip reason means the
// row did not look like a post.
func parseRow(row *goquery.Selection, origin string, now time.Time) (board.Post, string) {
	cells := row.Find("td, th")
	if cells.Length() < 3 {
		return board.Post{}, skipTooFewCells
	}

	texts := cells.Map(func(_ int, cell *goquery.Selection) string {
		return normalizeText(cell.Text())
	})

	// Title: first cell that reads like one, in document order. Its first
	// anchor supplies the link.
	var post board.Post
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		if !isTitleCell(texts[i]) {
			return true
		}
		post.Title = texts[i]
		if href, ok := cell.Find("a").First().Attr("href"); ok && href != "" {
			post.Link = absoluteLink(origin, href)
		}
		return false
	})
	if post.Title == "" {
		return board.Post{}, skipNoTitle
	}

	// Date: boards put it near the end of the row, so scan backwards.
	for i := len(texts) - 1; i >= 0; i-- {
		if isDateCell(texts[i]) {
			post.Date = texts[i]
			break
		}
	}
	if post.Date == "" {
		post.Date = now.Format(dateLayout)
	}

	return post, ""
}

// isTitleCell reports whether a cell's text looks like a post title: longer
// than five characters and not a bare row number.
func isTitleCell(text string) bool {
	return utf8.RuneCountInString(text) > 5 && !isNumeric(text)
}

// isDateCell reports whether a cell's text looks like a date: at least eight
// characters carrying one of the usual date separators.
func isDateCell(text string) bool {
	return utf8.RuneCountInString(text) >= 8 && strings.ContainsAny(text, "-./")
}

func isNumeric(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// normalizeText collapses runs of whitespace into single spaces and trims.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// absoluteLink resolves a board href against the site origin. Hrefs that
// already carry a scheme pass through untouched.
func absoluteLink(origin, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return origin + href
}
