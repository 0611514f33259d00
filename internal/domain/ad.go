package domain

type Ad struct {
	Headline string `json:"headline"`
	Text     string `json:"text"`
	CTA      string `json:"cta"`
	Color    string `json:"color"`
}

type GenerateAdsResponse struct {
	Domain string `json:"domain"`
	Ads    []Ad   `json:"ads"`
}
