package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDestinations lists the active areas from the "Nomes" sheet. Always
// a fresh read; the front desk sees edits to the directory immediately.
func (a API) GetDestinations(c *gin.Context) {
	destinations, err := a.directory(c).ActiveDestinations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// GetNeighborhoods lists the valid bairro values.
func (a API) GetNeighborhoods(c *gin.Context) {
	bairros, err := a.directory(c).Neighborhoods(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"neighborhoods": bairros})
}
