package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amazon-review-sentiment/internal/scraper"
	"amazon-review-sentiment/internal/sentiment"
)

func TestBuildReportNoReviews(t *testing.T) {
	details := &scraper.ProductDetails{Title: "Widget"}

	report := BuildReport("https://www.amazon.com/Widget/dp/B000000000/", details, nil)

	assert.Equal(t, NoReviewsMessage, report.Message)
	assert.Nil(t, report.AverageScore)
	assert.Nil(t, report.AverageComparative)
	assert.Empty(t, report.TopPositiveWords)
	assert.Empty(t, report.TopNegativeWords)
	assert.Zero(t, report.ReviewCount)
	assert.Equal(t, "Widget", report.ProductTitle)
}

func TestBuildReportAverages(t *testing.T) {
	details := &scraper.ProductDetails{Title: "Widget", ImageURL: "img.jpg", Rating: "4.5"}
	results := []sentiment.Result{
		{Score: 4, Comparative: 0.5},
		{Score: -2, Comparative: -0.25},
		{Score: 1, Comparative: 0.2},
	}

	report := BuildReport("url", details, results)

	require.NotNil(t, report.AverageScore)
	require.NotNil(t, report.AverageComparative)
	assert.InDelta(t, 1.0, *report.AverageScore, 1e-9)
	assert.InDelta(t, 0.15, *report.AverageComparative, 1e-9)
	assert.Equal(t, 3, report.ReviewCount)
	assert.Empty(t, report.Message)
}

func TestBuildReportTiesBreakByFirstInsertion(t *testing.T) {
	// great:2, good:2, nice:1, inserted in that order.
	results := []sentiment.Result{
		{Positive: []string{"great", "good"}},
		{Positive: []string{"great", "good", "nice"}},
	}

	report := BuildReport("url", &scraper.ProductDetails{}, results)

	assert.Equal(t, []string{"great", "good", "nice"}, report.TopPositiveWords)
}

func TestBuildReportTopFiveTruncation(t *testing.T) {
	results := []sentiment.Result{
		{Negative: []string{"bad", "bad", "bad"}},
		{Negative: []string{"awful", "awful", "poor", "weak", "broken", "slow"}},
	}

	report := BuildReport("url", &scraper.ProductDetails{}, results)

	assert.Len(t, report.TopNegativeWords, 5)
	assert.Equal(t, []string{"bad", "awful", "poor", "weak", "broken"}, report.TopNegativeWords)
}

func TestBuildReportFrequencyRanking(t *testing.T) {
	results := []sentiment.Result{
		{Positive: []string{"nice"}},
		{Positive: []string{"great", "nice"}},
		{Positive: []string{"nice", "great", "love"}},
	}

	report := BuildReport("url", &scraper.ProductDetails{}, results)

	assert.Equal(t, []string{"nice", "great", "love"}, report.TopPositiveWords)
}

func TestBuildReportFewerThanFiveWords(t *testing.T) {
	results := []sentiment.Result{{Positive: []string{"good"}}}

	report := BuildReport("url", &scraper.ProductDetails{}, results)

	assert.Equal(t, []string{"good"}, report.TopPositiveWords)
	assert.Empty(t, report.TopNegativeWords)
}
