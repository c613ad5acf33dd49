package handlers

import (
	"net/http"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// Login authenticates the operator and returns a bearer token. Returns
// 404 when operator auth is not configured.
func (a API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, err := a.Auth.Login(req.Usuario, req.Senha)
	if err != nil {
		// Bad credentials are a 401 here, not the generic 400 the
		// validation mapping would give.
		if domain.IsValidation(err) {
			respondError(c, http.StatusUnauthorized, "invalid_credentials", "usuário ou senha inválidos")
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
