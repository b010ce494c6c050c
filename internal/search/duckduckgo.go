package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/util"
	"github.com/factforge/factforge/internal/worker"
)

const (
	ddgInstantURL = "https://api.duckduckgo.com/"
	ddgHTMLURL    = "https://html.duckduckgo.com/html/"
)

// DuckDuckGoClient searches DuckDuckGo. It needs no API key: the instant
// answer API supplies abstracts and the HTML endpoint supplies organic
// results.
type DuckDuckGoClient struct {
	httpClient *http.Client
	limiter    *worker.Limiter
	userAgent  string
}

// NewDuckDuckGoClient creates a client with the given politeness limiter.
// A nil limiter disables rate gating (tests).
func NewDuckDuckGoClient(cfg *model.HTTPConfig, limiter *worker.Limiter) *DuckDuckGoClient {
	timeout := 15 * time.Second
	userAgent := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	var transport http.RoundTripper
	if cfg != nil {
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		transport = &http.Transport{
			Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
		}
	}

	return &DuckDuckGoClient{
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		limiter:    limiter,
		userAgent:  userAgent,
	}
}

// Name returns the engine name
func (c *DuckDuckGoClient) Name() string {
	return "duckduckgo"
}

// Search queries the instant answer API and the HTML results page,
// pooling hits until maxResults distinct URLs are collected.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	var pooled []model.SearchResult
	var lastErr error

	instant, err := c.searchInstant(ctx, query)
	if err != nil {
		lastErr = err
		log.Debug().Err(err).Msg("instant answer lookup failed")
	} else {
		pooled = append(pooled, instant...)
	}

	organic, err := c.searchHTML(ctx, query, maxResults+2)
	if err != nil {
		lastErr = err
		log.Debug().Err(err).Msg("html search failed")
	} else {
		pooled = append(pooled, organic...)
	}

	unique := DedupeByURL(pooled)
	if len(unique) > maxResults {
		unique = unique[:maxResults]
	}

	if len(unique) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return unique, nil
}

type ddgInstantResponse struct {
	Abstract      string `json:"Abstract"`
	AbstractURL   string `json:"AbstractURL"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

func (c *DuckDuckGoClient) searchInstant(ctx context.Context, query string) ([]model.SearchResult, error) {
	u := fmt.Sprintf("%s?q=%s&format=json&no_html=1&skip_disambig=1", ddgInstantURL, url.QueryEscape(query))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var data ddgInstantResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode instant answer: %w", err)
	}

	var results []model.SearchResult
	if data.Abstract != "" {
		results = append(results, model.SearchResult{
			Title:   data.Heading,
			URL:     data.AbstractURL,
			Snippet: data.Abstract,
		})
	}
	for _, topic := range data.RelatedTopics {
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		results = append(results, model.SearchResult{
			Title:   topic.Text,
			URL:     topic.FirstURL,
			Snippet: topic.Text,
		})
	}

	return results, nil
}

func (c *DuckDuckGoClient) searchHTML(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	u := fmt.Sprintf("%s?q=%s", ddgHTMLURL, url.QueryEscape(query))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	results := parseResultsPage(doc)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return results, nil
}

func (c *DuckDuckGoClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status %d", resp.StatusCode)
	}

	return readLimited(resp.Body, 2_000_000)
}

// parseResultsPage walks the DuckDuckGo HTML results DOM collecting
// result__a anchors (title + redirect link) and result__snippet nodes.
func parseResultsPage(doc *html.Node) []model.SearchResult {
	var results []model.SearchResult
	var snippets []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			switch {
			case hasClass(n, "result__a"):
				href := attr(n, "href")
				title := strings.TrimSpace(nodeText(n))
				if actual := decodeRedirectURL(href); actual != "" && title != "" &&
					!strings.HasPrefix(actual, "//duckduckgo.com") {
					results = append(results, model.SearchResult{Title: title, URL: actual})
				}
			case hasClass(n, "result__snippet"):
				snippets = append(snippets, strings.TrimSpace(nodeText(n)))
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	for i := range results {
		if i < len(snippets) {
			results[i].Snippet = snippets[i]
		}
	}

	return results
}

// decodeRedirectURL unwraps DuckDuckGo's /l/?uddg= redirect links
func decodeRedirectURL(rawURL string) string {
	if !strings.Contains(rawURL, "uddg=") {
		return rawURL
	}

	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		return rawURL
	}
	idx := strings.Index(decoded, "uddg=")
	if idx < 0 {
		return rawURL
	}
	actual := decoded[idx+len("uddg="):]
	if amp := strings.Index(actual, "&"); amp >= 0 {
		actual = actual[:amp]
	}
	if unescaped, err := url.QueryUnescape(actual); err == nil {
		return unescaped
	}
	return actual
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
