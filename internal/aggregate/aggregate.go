package aggregate

import (
	"sort"

	"amazon-review-sentiment/internal/scraper"
	"amazon-review-sentiment/internal/sentiment"
)

// NoReviewsMessage is the terminal report variant for products without a
// single review.
const NoReviewsMessage = "This product has no reviews yet!"

// Report is the aggregate sentiment of one product. For a product with no
// reviews only Message is set; the numeric fields stay absent and no
// division is ever evaluated.
type Report struct {
	ProductURL         string   `json:"productUrl"`
	ProductTitle       string   `json:"productTitle,omitempty"`
	ProductImageURL    string   `json:"productImageUrl,omitempty"`
	ProductRating      string   `json:"productRating,omitempty"`
	AverageScore       *float64 `json:"averageScore,omitempty"`
	AverageComparative *float64 `json:"averageComparative,omitempty"`
	TopPositiveWords   []string `json:"mostCommonPositiveWords,omitempty"`
	TopNegativeWords   []string `json:"mostCommonNegativeWords,omitempty"`
	ReviewCount        int      `json:"numberOfReviewsAnalysed,omitempty"`
	ArtifactKey        string   `json:"s3ObjectName,omitempty"`
	Message            string   `json:"message,omitempty"`
}

const topWordCount = 5

// BuildReport folds per-review sentiment results into one report. results
// must be in the same order as the collected reviews.
func BuildReport(productURL string, details *scraper.ProductDetails, results []sentiment.Result) *Report {
	report := &Report{
		ProductURL:      productURL,
		ProductTitle:    details.Title,
		ProductImageURL: details.ImageURL,
		ProductRating:   details.Rating,
	}

	if len(results) == 0 {
		report.Message = NoReviewsMessage
		return report
	}

	var totalScore int
	var totalComparative float64
	positive := newWordFrequency()
	negative := newWordFrequency()

	for _, result := range results {
		totalScore += result.Score
		totalComparative += result.Comparative
		for _, word := range result.Positive {
			positive.add(word)
		}
		for _, word := range result.Negative {
			negative.add(word)
		}
	}

	count := len(results)
	averageScore := float64(totalScore) / float64(count)
	averageComparative := totalComparative / float64(count)

	report.AverageScore = &averageScore
	report.AverageComparative = &averageComparative
	report.TopPositiveWords = positive.top(topWordCount)
	report.TopNegativeWords = negative.top(topWordCount)
	report.ReviewCount = count

	return report
}

// wordFrequency counts occurrences while remembering first-insertion order,
// which is the tie-break for ranking.
type wordFrequency struct {
	counts map[string]int
	order  []string
}

func newWordFrequency() *wordFrequency {
	return &wordFrequency{counts: make(map[string]int)}
}

func (f *wordFrequency) add(word string) {
	if _, seen := f.counts[word]; !seen {
		f.order = append(f.order, word)
	}
	f.counts[word]++
}

// top returns up to n words by descending count; equal counts keep
// first-insertion order.
func (f *wordFrequency) top(n int) []string {
	ranked := make([]string, len(f.order))
	copy(ranked, f.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return f.counts[ranked[i]] > f.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
