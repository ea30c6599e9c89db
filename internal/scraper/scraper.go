package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"amazon-review-sentiment/internal/renderer"
)

// ErrPaginationOverrun is returned when the review listing never runs out of
// next-page links, either past the page cap or through a cycle.
var ErrPaginationOverrun = errors.New("pagination overrun")

type Scraper struct {
	selectors *Selectors
	maxPages  int
	logger    *slog.Logger
}

func NewScraper(selectors *Selectors, maxPages int, logger *slog.Logger) *Scraper {
	return &Scraper{
		selectors: selectors,
		maxPages:  maxPages,
		logger:    logger,
	}
}

// ExtractProductDetails pulls title, image and rating from the rendered
// product page. Selectors that match nothing leave the field empty.
func (s *Scraper) ExtractProductDetails(html string) (*ProductDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse product page: %w", err)
	}

	details := &ProductDetails{}
	details.Title = strings.TrimSpace(doc.Find(s.selectors.ProductTitle).First().Text())
	details.ImageURL, _ = doc.Find(s.selectors.ProductImage).First().Attr("src")
	details.Rating = strings.TrimSpace(doc.Find(s.selectors.ProductRating).First().Text())

	return details, nil
}

// Collect walks the review listing from listingURL, appending review texts
// in DOM order, until no next-page link is found. Traversal is bounded by
// the page cap and a visited-URL set; anomalous markup that would loop
// forever fails with ErrPaginationOverrun instead.
func (s *Scraper) Collect(ctx context.Context, r renderer.Renderer, listingURL string) ([]string, error) {
	var reviews []string
	visited := make(map[string]bool)
	currentURL := listingURL

	for pageNum := 1; ; pageNum++ {
		if pageNum > s.maxPages {
			return nil, fmt.Errorf("%w: exceeded %d pages", ErrPaginationOverrun, s.maxPages)
		}
		if visited[currentURL] {
			return nil, fmt.Errorf("%w: next link cycles back to %s", ErrPaginationOverrun, currentURL)
		}
		visited[currentURL] = true

		html, err := r.Render(ctx, currentURL)
		if err != nil {
			return nil, fmt.Errorf("render listing page %d: %w", pageNum, err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("parse listing page %d: %w", pageNum, err)
		}

		pageReviews := s.extractReviews(doc)
		reviews = append(reviews, pageReviews...)

		s.logger.Debug("Collected review page",
			"page", pageNum,
			"reviews", len(pageReviews),
			"url", currentURL,
		)

		nextLink := s.findNextPageLink(doc)
		if nextLink == "" {
			return reviews, nil
		}
		currentURL = resolveLink(currentURL, nextLink)
	}
}

func (s *Scraper) extractReviews(doc *goquery.Document) []string {
	var reviews []string
	doc.Find(s.selectors.ReviewText).Each(func(i int, sel *goquery.Selection) {
		reviews = append(reviews, strings.TrimSpace(sel.Text()))
	})
	return reviews
}

func (s *Scraper) findNextPageLink(doc *goquery.Document) string {
	for _, selector := range s.selectors.NextPageLink {
		href, exists := doc.Find(selector).First().Attr("href")
		if exists && href != "" {
			return strings.TrimSpace(href)
		}
	}
	return ""
}

// resolveLink makes a possibly relative next-page href absolute against the
// page it was found on.
func resolveLink(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
