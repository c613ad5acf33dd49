package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"
	"backend/internal/services"
	"backend/internal/sheetstore"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, store sheetstore.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.API{
		Env:   env,
		Store: store,
		Auth: services.AuthService{
			Secret:       []byte(env.AuthSecret),
			OperatorUser: env.OperatorUser,
			OperatorHash: env.OperatorPassHash,
		},
	}

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/store-check", a.StoreCheck)

		api.GET("/destinations", a.GetDestinations)
		api.GET("/neighborhoods", a.GetNeighborhoods)

		auth := api.Group("/auth")
		auth.POST("/login", a.Login)

		registrations := api.Group("/registrations")
		registrations.Use(middleware.RequireOperator(a.Auth))
		registrations.POST("", a.CreateRegistration)
	}

	return r
}
