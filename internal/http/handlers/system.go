package handlers

import (
	"fmt"
	"net/http"

	"backend/internal/domain"
	"backend/internal/http/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Health is a pure liveness check; it touches nothing external.
func (a API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StoreCheck verifies the spreadsheet is reachable with the configured
// credentials and reports how many sheets it carries.
func (a API) StoreCheck(c *gin.Context) {
	titles, err := a.Store.SheetTitles(c.Request.Context())
	if err != nil {
		RespondDomainError(c, domain.StoreError{Op: "list sheets", Err: err})
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "system", "store_check", fmt.Sprintf("sheets=%d", len(titles)))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sheets": len(titles)})
}
