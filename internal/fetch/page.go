// Package fetch retrieves a web page and extracts its readable article
// content as Markdown for use in link-analysis prompts.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

const fetchTimeout = 30 * time.Second

const userAgent = "Mozilla/5.0 (compatible; Holocron/1.0; +https://github.com/valter-silva-au/holocron)"

// Article is the extracted content of a fetched page.
type Article struct {
	Title    string
	Byline   string
	Markdown string
}

// Page fetches rawURL and extracts its main content, stripping navigation
// and ads, converted to Markdown. Failures are returned to the caller, who
// may degrade to a URL-only prompt.
func Page(ctx context.Context, rawURL string) (*Article, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL %q", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: HTTP %d", rawURL, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return nil, fmt.Errorf("extracting article content: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(article.Content)
	if err != nil {
		// Fall back to the plain text extraction.
		markdown = article.TextContent
	}

	return &Article{
		Title:    article.Title,
		Byline:   article.Byline,
		Markdown: markdown,
	}, nil
}
