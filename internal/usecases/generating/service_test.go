package generating

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	brandproxymocks "github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandproxy/mocks"
	"github.com/vfg2006/brand-ads-api/internal/config"
	"github.com/vfg2006/brand-ads-api/internal/domain"
	"github.com/vfg2006/brand-ads-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newGeneratorConfig(defaultCount, maxCount int) *config.Config {
	return &config.Config{
		Generator: config.Generator{
			DefaultAdCount: defaultCount,
			MaxAdCount:     maxCount,
		},
	}
}

func TestGenerateAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		siteDomain string
		count      int
		cfg        *config.Config
		brandKit   *domain.BrandKit
		validate   func(t *testing.T, result *domain.GenerateAdsResponse)
	}{
		{
			name:       "deve gerar a quantidade pedida de anúncios personalizados com nome e cor da marca",
			siteDomain: "acme.com",
			count:      2,
			cfg:        newGeneratorConfig(3, 0),
			brandKit: &domain.BrandKit{
				Name:   "Acme",
				Domain: "acme.com",
				Colors: []domain.BrandColor{
					{Hex: stringPtr("#ff0000"), Type: "accent"},
				},
			},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				assert.Equal(t, "acme.com", result.Domain)
				require.Len(t, result.Ads, 2)

				assert.Equal(t, "Discover Acme", result.Ads[0].Headline)
				assert.Equal(t, "Learn More", result.Ads[0].CTA)
				assert.Equal(t, "#ff0000", result.Ads[0].Color)

				assert.Equal(t, "Acme was made for you", result.Ads[1].Headline)
				assert.Equal(t, "Sign Up", result.Ads[1].CTA)
				assert.Equal(t, "#ff0000", result.Ads[1].Color)
			},
		},
		{
			name:       "deve usar a quantidade padrão quando count é zero",
			siteDomain: "acme.com",
			count:      0,
			cfg:        newGeneratorConfig(3, 0),
			brandKit:   &domain.BrandKit{Name: "Acme"},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				assert.Len(t, result.Ads, 3)
			},
		},
		{
			name:       "deve usar a quantidade padrão quando count é negativo",
			siteDomain: "acme.com",
			count:      -5,
			cfg:        newGeneratorConfig(3, 0),
			brandKit:   &domain.BrandKit{Name: "Acme"},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				assert.Len(t, result.Ads, 3)
			},
		},
		{
			name:       "deve reaproveitar os modelos quando count é maior que a quantidade de modelos",
			siteDomain: "acme.com",
			count:      12,
			cfg:        newGeneratorConfig(3, 0),
			brandKit:   &domain.BrandKit{Name: "Acme"},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				require.Len(t, result.Ads, 12)
				assert.Equal(t, result.Ads[0].Headline, result.Ads[10].Headline)
				assert.Equal(t, result.Ads[1].Headline, result.Ads[11].Headline)
				assert.NotEqual(t, result.Ads[0].Headline, result.Ads[1].Headline)
			},
		},
		{
			name:       "deve limitar a quantidade quando excede o máximo configurado",
			siteDomain: "acme.com",
			count:      50,
			cfg:        newGeneratorConfig(3, 5),
			brandKit:   &domain.BrandKit{Name: "Acme"},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				assert.Len(t, result.Ads, 5)
			},
		},
		{
			name:       "deve usar o domínio da marca como nome quando o nome está vazio",
			siteDomain: "acme.com",
			count:      1,
			cfg:        newGeneratorConfig(3, 0),
			brandKit:   &domain.BrandKit{Domain: "acme.com"},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				require.Len(t, result.Ads, 1)
				assert.Equal(t, "Discover acme.com", result.Ads[0].Headline)
			},
		},
		{
			name:       "deve usar o nome padrão quando a marca não tem nome nem domínio",
			siteDomain: "acme.com",
			count:      1,
			cfg:        newGeneratorConfig(3, 0),
			brandKit:   &domain.BrandKit{},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				require.Len(t, result.Ads, 1)
				assert.Equal(t, "Discover Your brand", result.Ads[0].Headline)
			},
		},
		{
			name:       "deve usar a cor padrão quando nenhuma cor tem hex preenchido",
			siteDomain: "acme.com",
			count:      1,
			cfg:        newGeneratorConfig(3, 0),
			brandKit: &domain.BrandKit{
				Name: "Acme",
				Colors: []domain.BrandColor{
					{Hex: nil, Type: "dark"},
					{Hex: stringPtr(""), Type: "light"},
				},
			},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				require.Len(t, result.Ads, 1)
				assert.Equal(t, domain.DefaultPrimaryColor, result.Ads[0].Color)
			},
		},
		{
			name:       "deve usar a primeira cor com hex preenchido na ordem recebida",
			siteDomain: "acme.com",
			count:      1,
			cfg:        newGeneratorConfig(3, 0),
			brandKit: &domain.BrandKit{
				Name: "Acme",
				Colors: []domain.BrandColor{
					{Hex: nil, Type: "dark"},
					{Hex: stringPtr("#00ff00"), Type: "accent"},
					{Hex: stringPtr("#123456"), Type: "light"},
				},
			},
			validate: func(t *testing.T, result *domain.GenerateAdsResponse) {
				require.Len(t, result.Ads, 1)
				assert.Equal(t, "#00ff00", result.Ads[0].Color)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBrandProxy := brandproxymocks.NewMockBrandProxyIntegrator(ctrl)
			mockBrandProxy.EXPECT().BrandKitByDomain(tt.siteDomain).Return(tt.brandKit, nil)

			service := NewService(mockBrandProxy, tt.cfg)

			result, err := service.GenerateAds(tt.siteDomain, tt.count)
			require.NoError(t, err)
			require.NotNil(t, result)

			tt.validate(t, result)
		})
	}
}

func TestGenerateAds_ProxyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBrandProxy := brandproxymocks.NewMockBrandProxyIntegrator(ctrl)
	mockBrandProxy.
		EXPECT().
		BrandKitByDomain("dominio-inexistente.com").
		Return(nil, fmt.Errorf("requisição ao brand proxy falhou com status: 500 Internal Server Error"))

	service := NewService(mockBrandProxy, newGeneratorConfig(3, 0))

	result, err := service.GenerateAds("dominio-inexistente.com", 3)
	require.Error(t, err)
	assert.Nil(t, result)

	var genErr *GeneratingError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, apiErrors.ErrExternalService, genErr.Code)
	assert.Equal(t, "dominio-inexistente.com", genErr.Domain)
	assert.True(t, errors.Is(err, ErrBrandKitFetch))
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestGenerateAds_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brandKit := &domain.BrandKit{
		Name: "Acme",
		Colors: []domain.BrandColor{
			{Hex: stringPtr("#ff0000")},
		},
	}

	mockBrandProxy := brandproxymocks.NewMockBrandProxyIntegrator(ctrl)
	mockBrandProxy.EXPECT().BrandKitByDomain("acme.com").Return(brandKit, nil).Times(2)

	service := NewService(mockBrandProxy, newGeneratorConfig(3, 0))

	first, err := service.GenerateAds("acme.com", 4)
	require.NoError(t, err)

	second, err := service.GenerateAds("acme.com", 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
