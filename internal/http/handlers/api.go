package handlers

import (
	"backend/internal/config"
	"backend/internal/http/middleware"
	"backend/internal/services"
	"backend/internal/sheetstore"

	"github.com/gin-gonic/gin"
)

// API holds the injected collaborators every handler needs. There is no
// package-global store; the handle built in main flows through here.
type API struct {
	Env   config.Env
	Store sheetstore.Store
	Auth  services.AuthService
}

func (a API) directory(c *gin.Context) services.DirectoryService {
	return services.DirectoryService{
		Store:        a.Store,
		NomesSheet:   a.Env.NomesSheet,
		BairrosSheet: a.Env.BairrosSheet,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a API) registration(c *gin.Context) services.RegistrationService {
	return services.RegistrationService{
		Store:        a.Store,
		NomesSheet:   a.Env.NomesSheet,
		BairrosSheet: a.Env.BairrosSheet,
		PhoneDDD:     a.Env.PhoneDDD,
		Timezone:     a.Env.Timezone,
		RequestID:    middleware.GetRequestID(c),
	}
}
