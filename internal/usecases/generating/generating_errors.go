package generating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de geração de anúncios
var (
	// Erros de serviços externos
	ErrBrandKitFetch = errors.New("error fetching brand kit from proxy")
)

// GeneratingError é um erro com contexto adicional para geração de anúncios
type GeneratingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Domain  string // Domínio consultado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GeneratingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GeneratingError) Unwrap() error {
	return e.Err
}

// NewGeneratingError cria um novo GeneratingError
func NewGeneratingError(err error, code string, siteDomain string, details string) *GeneratingError {
	return &GeneratingError{
		Err:     err,
		Code:    code,
		Domain:  siteDomain,
		Details: details,
	}
}
