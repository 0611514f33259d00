package domain

const (
	// DefaultBrandName é usado quando o kit não traz nome nem domínio
	DefaultBrandName = "Your brand"

	// DefaultPrimaryColor é usada quando o kit não traz nenhuma cor com hex válido
	DefaultPrimaryColor = "#0052cc"
)

// BrandKit representa os dados de marca retornados pelo Brandfetch.
// Apenas os campos consumidos pelo gerador são mapeados; o proxy
// repassa o corpo bruto sem depender desta estrutura.
type BrandKit struct {
	Name   string       `json:"name,omitempty"`
	Domain string       `json:"domain,omitempty"`
	Colors []BrandColor `json:"colors,omitempty"`
}

type BrandColor struct {
	Hex        *string `json:"hex"`
	Type       string  `json:"type,omitempty"`
	Brightness int     `json:"brightness,omitempty"`
}

// BrandName resolve o nome exibível da marca: Name, senão Domain,
// senão o literal DefaultBrandName.
func (k *BrandKit) BrandName() string {
	if k.Name != "" {
		return k.Name
	}

	if k.Domain != "" {
		return k.Domain
	}

	return DefaultBrandName
}

// PrimaryColorHex devolve o hex da primeira cor com valor presente,
// preservando a ordem enviada pelo provedor. Entradas com hex nulo ou
// vazio são ignoradas.
func (k *BrandKit) PrimaryColorHex() string {
	for _, color := range k.Colors {
		if color.Hex != nil && *color.Hex != "" {
			return *color.Hex
		}
	}

	return DefaultPrimaryColor
}
