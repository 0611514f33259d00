package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos internos de erro. O corpo da resposta carrega apenas a mensagem
// (contrato {"error": string}); o código serve para classificar o erro e
// resolver o status HTTP.
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do servidor (SRV)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Falha em serviço externo (upstream)
)

// Mapeamento de códigos de erro para status HTTP. Falhas de upstream
// são repassadas como 500, sem distinção entre transitórias e permanentes.
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusInternalServerError,
}

// APIError é o corpo padronizado de erro das duas APIs
type APIError struct {
	Error string `json:"error"`
}

// WriteError resolve o status a partir do código e escreve o corpo
// {"error": message} na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusForCode(code))
	json.NewEncoder(w).Encode(APIError{Error: message})
}

// StatusForCode expõe o status HTTP associado a um código de erro
func StatusForCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}
