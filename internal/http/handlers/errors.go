package handlers

import (
	"net/http"

	"backend/internal/domain"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps the error taxonomy onto HTTP statuses:
// validation problems are the caller's to fix (400), store and
// contract failures mean try again later (502).
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsContract(err):
		respondError(c, http.StatusBadGateway, "store_contract_error", "a planilha respondeu em formato inesperado")
	case domain.IsStore(err):
		respondError(c, http.StatusBadGateway, "store_error", "falha ao acessar a planilha")
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "erro interno")
	}
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "corpo da requisição vazio")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "payload inválido: "+err.Error())
		return false
	}
	return true
}
