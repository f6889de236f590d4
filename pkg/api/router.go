package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ckscontracting/demo-request/pkg/middleware"
)

// NewRouter builds the gin engine with middleware and all routes
func NewRouter(h *Handlers, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())

	h.Register(router)
	return router
}
