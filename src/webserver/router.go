package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/truthlens/truthlens-client/src/backend"
	"github.com/truthlens/truthlens-client/src/session"
)

func attachRoutes(r *gin.Engine, api *backend.Client, sess *session.Session, hub *Hub) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}))

	submitH := NewSubmit(api, sess)
	voteH := NewVote(api, hub)
	dlH := NewDownloads(api, sess)

	client := r.Group("/client")
	{
		client.POST("/submit", submitH.Handle)
		client.POST("/vote", voteH.Cast)
		client.GET("/chat", submitH.Chat)
		client.GET("/report", dlH.Report)
		client.GET("/ledger-proof", dlH.LedgerProof)
		client.GET("/live", hub.Serve)
	}

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
}
