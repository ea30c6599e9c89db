package urls

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrNotProvided       = errors.New("URL not provided")
	ErrInvalid           = errors.New("invalid URL")
	ErrUnsupportedDomain = errors.New("domain not supported")
	ErrNotProduct        = errors.New("URL does not reference a product")
)

// IsClientError reports whether err stems from the caller's input rather
// than a pipeline fault.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotProvided) ||
		errors.Is(err, ErrInvalid) ||
		errors.Is(err, ErrUnsupportedDomain) ||
		errors.Is(err, ErrNotProduct)
}

// ProductReference holds the canonical URLs derived once per request.
type ProductReference struct {
	RawURL           string
	ProductURL       string
	ReviewListingURL string
}

// Normalizer derives canonical product and review-listing URLs for a single
// retailer. Pure, no I/O.
type Normalizer struct {
	domain       string
	productPath  string
	reviewPath   string
	reviewSuffix string
	refDelimiter string
}

func NewNormalizer(domain, productPath, reviewPath, reviewSuffix string) *Normalizer {
	return &Normalizer{
		domain:       domain,
		productPath:  productPath,
		reviewPath:   reviewPath,
		reviewSuffix: reviewSuffix,
		refDelimiter: "/ref",
	}
}

// Resolve validates rawURL and derives the canonical product URL and the
// first review-listing page URL.
func (n *Normalizer) Resolve(rawURL string) (*ProductReference, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, ErrNotProvided
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalid
	}

	if !strings.Contains(parsed.Host, n.domain) {
		return nil, ErrUnsupportedDomain
	}

	if !strings.Contains(parsed.Path, n.productPath) {
		return nil, ErrNotProduct
	}

	// Strip the tracking suffix: everything from the "/ref..." segment on.
	productURL := trimmed
	if idx := strings.Index(productURL, n.refDelimiter); idx > -1 {
		productURL = productURL[:idx]
	}
	if !strings.HasSuffix(productURL, "/") {
		productURL += "/"
	}

	listingURL := strings.Replace(productURL, n.productPath, n.reviewPath, 1) + n.reviewSuffix

	return &ProductReference{
		RawURL:           rawURL,
		ProductURL:       productURL,
		ReviewListingURL: listingURL,
	}, nil
}
