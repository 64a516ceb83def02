package webserver

import (
	"github.com/gin-gonic/gin"

	"github.com/truthlens/truthlens-client/src/backend"
	"github.com/truthlens/truthlens-client/src/session"
)

func New(api *backend.Client, sess *session.Session) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, api, sess, NewHub())
	return g
}
