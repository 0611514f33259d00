package domain

import "strings"

// BrandPlaceholder é o ponto de substituição do nome da marca nos templates
const BrandPlaceholder = "{brand}"

// AdTemplate é um registro de dados puro: headline e text carregam o
// placeholder da marca, cta é um rótulo fixo de chamada para ação.
type AdTemplate struct {
	Headline string
	Text     string
	CTA      string
}

// AdTemplates é a tabela fixa de templates de anúncio. A seleção para o
// i-ésimo anúncio gerado é sempre i mod len(AdTemplates) — determinística,
// sem sorteio.
var AdTemplates = [...]AdTemplate{
	{
		Headline: "Discover {brand}",
		Text:     "Everything you love about {brand}, now just one click away.",
		CTA:      "Learn More",
	},
	{
		Headline: "{brand} was made for you",
		Text:     "Join the thousands who already count on {brand} every single day.",
		CTA:      "Sign Up",
	},
	{
		Headline: "Meet the new {brand}",
		Text:     "A fresh look with the same {brand} quality you trust.",
		CTA:      "Shop Now",
	},
	{
		Headline: "Why wait? Try {brand}",
		Text:     "Start your journey with {brand} today, no strings attached.",
		CTA:      "Get Started",
	},
	{
		Headline: "{brand} delivers more",
		Text:     "See why {brand} is the first choice of people who expect more.",
		CTA:      "See Why",
	},
	{
		Headline: "Upgrade to {brand}",
		Text:     "Make the switch to {brand} and never look back.",
		CTA:      "Switch Today",
	},
	{
		Headline: "The smart way to do it: {brand}",
		Text:     "Save time and effort by letting {brand} work for you.",
		CTA:      "Try It Free",
	},
	{
		Headline: "{brand}, simplified",
		Text:     "All the power of {brand} wrapped in one simple experience.",
		CTA:      "Explore",
	},
	{
		Headline: "Go further with {brand}",
		Text:     "Your goals, accelerated by {brand}.",
		CTA:      "Join Now",
	},
	{
		Headline: "{brand} has an offer for you",
		Text:     "Limited-time deals from {brand} you won't want to miss.",
		CTA:      "Get Offer",
	},
}

// Render aplica o nome da marca ao template e devolve o anúncio ainda sem
// cor; a cor é resolvida por lote, não por template.
func (t AdTemplate) Render(brandName string) Ad {
	return Ad{
		Headline: strings.ReplaceAll(t.Headline, BrandPlaceholder, brandName),
		Text:     strings.ReplaceAll(t.Text, BrandPlaceholder, brandName),
		CTA:      t.CTA,
	}
}

// TemplateAt devolve o template da posição i ciclando pela tabela
func TemplateAt(i int) AdTemplate {
	return AdTemplates[i%len(AdTemplates)]
}
