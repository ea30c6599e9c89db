package urls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(
		"amazon.com",
		"/dp/",
		"/product-reviews/",
		"ref=cm_cr_dp_d_show_all_btm?ie=UTF8&reviewerType=all_reviews",
	)
}

func TestResolveValidation(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrNotProvided},
		{"whitespace only", "   ", ErrNotProvided},
		{"not a url", "not a url at all", ErrInvalid},
		{"missing scheme", "www.amazon.com/Thing/dp/B000000000/", ErrInvalid},
		{"wrong domain", "https://www.example.com/Thing/dp/B000000000/", ErrUnsupportedDomain},
		{"not a product page", "https://www.amazon.com/gp/css/order-history", ErrNotProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Resolve(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsClientError(err))
		})
	}
}

func TestResolveStripsTrackingSuffix(t *testing.T) {
	n := newTestNormalizer()

	// Different tracking suffixes must normalize identically.
	first, err := n.Resolve("https://www.amazon.com/Product-Name/dp/B000000000/ref=xyz")
	require.NoError(t, err)
	second, err := n.Resolve("https://www.amazon.com/Product-Name/dp/B000000000/ref=foo_bar?ie=UTF8")
	require.NoError(t, err)

	assert.Equal(t, "https://www.amazon.com/Product-Name/dp/B000000000/", first.ProductURL)
	assert.Equal(t, first.ProductURL, second.ProductURL)
	assert.Equal(t, first.ReviewListingURL, second.ReviewListingURL)
}

func TestResolveWithoutSuffix(t *testing.T) {
	n := newTestNormalizer()

	ref, err := n.Resolve("https://www.amazon.com/Product-Name/dp/B000000000")
	require.NoError(t, err)
	assert.Equal(t, "https://www.amazon.com/Product-Name/dp/B000000000/", ref.ProductURL)
}

func TestResolveDerivesReviewListingURL(t *testing.T) {
	n := newTestNormalizer()

	ref, err := n.Resolve("https://www.amazon.com/Product-Name/dp/B000000000/ref=abc")
	require.NoError(t, err)

	assert.Equal(t,
		"https://www.amazon.com/Product-Name/product-reviews/B000000000/ref=cm_cr_dp_d_show_all_btm?ie=UTF8&reviewerType=all_reviews",
		ref.ReviewListingURL,
	)
}

func TestResolveKeepsRawURL(t *testing.T) {
	n := newTestNormalizer()

	raw := "https://www.amazon.com/Product-Name/dp/B000000000/ref=abc"
	ref, err := n.Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, ref.RawURL)
}

func TestResolveAcceptsRegionalDomains(t *testing.T) {
	n := newTestNormalizer()

	ref, err := n.Resolve("https://www.amazon.com.au/Apple-iPhone/dp/B07T3BM4H1/ref=cm_cr_arp_d_product_top?ie=UTF8")
	require.NoError(t, err)
	assert.Equal(t, "https://www.amazon.com.au/Apple-iPhone/dp/B07T3BM4H1/", ref.ProductURL)
}

func TestIsClientErrorRejectsOtherErrors(t *testing.T) {
	assert.False(t, IsClientError(assert.AnError))
	assert.False(t, IsClientError(nil))
}
