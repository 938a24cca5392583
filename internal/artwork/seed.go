package artwork

// seedArtworks is the first-run sample catalog. It is persisted once when
// the backing store is completely empty so subsequent loads are stable.
var seedArtworks = []NewArtworkInput{
	{
		Title:       "Harmattan Dawn",
		Description: "Warm haze settling over the savannah at first light.",
		ImageURLs:   []string{"https://gallery-artwork-images.s3.amazonaws.com/artwork-images/seed-harmattan-dawn.jpg"},
		Dimensions:  "80cm x 60cm",
		Medium:      "Oil on canvas",
		Price:       1200,
		Currency:    CurrencyUSD,
		Available:   true,
		Featured:    true,
		Category:    CategoryLandscape,
	},
	{
		Title:       "Market Day",
		Description: "A fabric seller wrapped in indigo, caught mid-bargain.",
		ImageURLs:   []string{"https://gallery-artwork-images.s3.amazonaws.com/artwork-images/seed-market-day.jpg"},
		Dimensions:  "60cm x 90cm",
		Medium:      "Acrylic on canvas",
		Price:       850000,
		Currency:    CurrencyNGN,
		Available:   true,
		Featured:    true,
		Category:    CategoryPortrait,
	},
	{
		Title:       "Lagos Rhythm",
		Description: "Layered color fields tracing the pulse of the city.",
		ImageURLs:   []string{"https://gallery-artwork-images.s3.amazonaws.com/artwork-images/seed-lagos-rhythm.jpg"},
		Dimensions:  "100cm x 100cm",
		Medium:      "Mixed media",
		Price:       2400,
		Currency:    CurrencyUSD,
		Available:   true,
		Featured:    true,
		Category:    CategoryAbstract,
	},
	{
		Title:       "Calabash and Hibiscus",
		Description: "Still life with a carved calabash and cut hibiscus stems.",
		ImageURLs:   []string{"https://gallery-artwork-images.s3.amazonaws.com/artwork-images/seed-calabash-hibiscus.jpg"},
		Dimensions:  "45cm x 60cm",
		Medium:      "Oil on board",
		Price:       600,
		Currency:    CurrencyUSD,
		Available:   true,
		Featured:    false,
		Category:    CategoryStillLife,
	},
	{
		Title:       "River Crossing",
		Description: "Fishermen poling across the Niger under a heavy sky.",
		ImageURLs:   []string{"https://gallery-artwork-images.s3.amazonaws.com/artwork-images/seed-river-crossing.jpg"},
		Dimensions:  "120cm x 80cm",
		Medium:      "Oil on canvas",
		Price:       1800,
		Currency:    CurrencyUSD,
		Available:   false,
		Featured:    false,
		Category:    CategoryLandscape,
	},
	{
		Title:       "Elder in Blue",
		Description: "Portrait study of an elder in an agbada, eyes half closed.",
		ImageURLs:   []string{"https://gallery-artwork-images.s3.amazonaws.com/artwork-images/seed-elder-in-blue.jpg"},
		Dimensions:  "50cm x 70cm",
		Medium:      "Charcoal and pastel",
		Price:       450000,
		Currency:    CurrencyNGN,
		Available:   true,
		Featured:    false,
		Category:    CategoryPortrait,
	},
}
