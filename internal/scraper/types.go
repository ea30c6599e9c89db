package scraper

// ProductDetails are extracted once from the product page. Empty fields mean
// the selector matched nothing; that is valid, not an error.
type ProductDetails struct {
	Title    string
	ImageURL string
	Rating   string
}

type Selectors struct {
	ProductTitle  string   `yaml:"product_title"`
	ProductImage  string   `yaml:"product_image"`
	ProductRating string   `yaml:"product_rating"`
	ReviewText    string   `yaml:"review_text"`
	NextPageLink  []string `yaml:"next_page_link"`
}

// DefaultSelectors matches the Amazon product and review-listing markup.
func DefaultSelectors() *Selectors {
	return &Selectors{
		ProductTitle:  "#productTitle",
		ProductImage:  "#imgTagWrapperId img",
		ProductRating: ".a-size-base.a-color-base",
		ReviewText:    ".review-text-content",
		NextPageLink:  []string{"li.a-last a", "a[rel='next']"},
	}
}
