// Package fetch scrapes the competition site's per-year pages and
// downloads the linked test and answer-key PDFs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Links holds the test and answer-key PDF URLs found for one subject.
type Links struct {
	Test string
	Key  string
}

// Crawler fetches year pages and PDFs from the competition site.
type Crawler struct {
	baseURL string
	client  *http.Client
	// Delay between downloads, to stay polite.
	Delay time.Duration
}

// NewCrawler creates a crawler rooted at the given base URL.
func NewCrawler(baseURL string) *Crawler {
	return &Crawler{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		Delay:   time.Second,
	}
}

// YearPage fetches and parses the HTML page for one competition year.
func (c *Crawler) YearPage(ctx context.Context, year int) (*goquery.Document, error) {
	pageURL := fmt.Sprintf("%s/%d.html", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %q: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %q: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pageURL, err)
	}
	return doc, nil
}

// TestLinks maps subject names to the test and key PDF links found on a
// year page. Subject names may use underscores; matching is done on
// lowercased link text, with "key"/"answer" distinguishing answer keys
// from tests.
func (c *Crawler) TestLinks(doc *goquery.Document, subjects []string) map[string]Links {
	type pdfLink struct {
		text string
		href string
	}

	var pdfs []pdfLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || !strings.Contains(strings.ToLower(href), "pdf") {
			return
		}
		pdfs = append(pdfs, pdfLink{
			text: strings.ToLower(strings.TrimSpace(sel.Text())),
			href: c.resolve(href),
		})
	})

	links := make(map[string]Links, len(subjects))
	for _, subject := range subjects {
		needle := strings.ToLower(strings.ReplaceAll(subject, "_", " "))
		var l Links
		for _, p := range pdfs {
			if !strings.Contains(p.text, needle) {
				continue
			}
			if strings.Contains(p.text, "key") || strings.Contains(p.text, "answer") {
				if l.Key == "" {
					l.Key = p.href
				}
			} else if l.Test == "" {
				l.Test = p.href
			}
		}
		links[subject] = l
	}
	return links
}

func (c *Crawler) resolve(href string) string {
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// Download fetches a PDF to the given path, creating parent
// directories as needed.
func (c *Crawler) Download(ctx context.Context, pdfURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return fmt.Errorf("create request for %q: %w", pdfURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %q: %w", pdfURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %q: status %d", pdfURL, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %q: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	if c.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.Delay):
		}
	}
	return nil
}
