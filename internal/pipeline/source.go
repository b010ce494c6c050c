package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/util"
	"github.com/factforge/factforge/internal/worker"
)

// minDocumentChars is the input length floor. Anything shorter cannot
// hold a verifiable claim worth a full analysis.
const minDocumentChars = 100

// Document is raw text ready for claim extraction
type Document struct {
	Text    string
	Subject string
	Source  string
}

// Source loads document text from local files or URLs. URL fetches go
// through a robots.txt gate, the shared per-domain rate limiter, and
// strip HTML down to visible text.
type Source struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
}

// NewSource creates a document source with the given HTTP behavior.
// A nil limiter disables rate gating (tests).
func NewSource(cfg model.HTTPConfig, limiter *worker.Limiter) *Source {
	return &Source{
		limiter: limiter,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// Load reads document text from a file path or fetches it from a URL
func (s *Source) Load(ctx context.Context, source string) (*Document, error) {
	var doc *Document
	var err error

	if isURL(source) {
		doc, err = s.fetch(ctx, source)
	} else {
		doc, err = s.readFile(source)
	}
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(doc.Text)) < minDocumentChars {
		return nil, fmt.Errorf("document too short: need at least %d characters of text", minDocumentChars)
	}

	return doc, nil
}

func (s *Source) readFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return &Document{
		Text:    string(data),
		Subject: subjectFromPath(path),
		Source:  path,
	}, nil
}

func (s *Source) fetch(ctx context.Context, rawURL string) (*Document, error) {
	allowed, crawlDelay, err := s.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check %s: %w", rawURL, err)
	}
	if !allowed {
		return nil, fmt.Errorf("fetch %s: disallowed by robots.txt", rawURL)
	}

	if s.limiter != nil {
		if err := s.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := resp.Request.URL.String()

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") {
		text = visibleText(text)
	}

	return &Document{
		Text:    text,
		Subject: subjectFromURL(finalURL),
		Source:  finalURL,
	}, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// visibleText strips markup down to readable text, skipping script,
// style, and other non-content subtrees. A document that fails to parse
// is returned as-is.
func visibleText(htmlText string) string {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return htmlText
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head", "nav", "footer":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return b.String()
}

func subjectFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return deslug(base)
}

func subjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return deslug(last)
}

func deslug(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}
