package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type registrationRequest struct {
	Areas    []string `json:"areas"`
	Nome     string   `json:"nome"`
	Telefone string   `json:"telefone"`
	Bairro   string   `json:"bairro"`
}

// CreateRegistration runs one submission: one senha per requested area
// plus the combined ticket PDF. With "Accept: application/pdf" the
// document is returned inline for immediate printing; otherwise the
// response is JSON with the PDF base64-embedded.
func (a API) CreateRegistration(c *gin.Context) {
	var req registrationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := a.registration(c).Submit(c.Request.Context(), req.Areas, req.Nome, req.Telefone, req.Bairro)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "application/pdf") {
		c.Header("Content-Disposition", `inline; filename="senhas.pdf"`)
		c.Data(http.StatusCreated, "application/pdf", res.PDF)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"registrations": res.Registrations,
		"registered_at": res.RegisteredAt,
		"pdf_base64":    base64.StdEncoding.EncodeToString(res.PDF),
	})
}
