package webserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truthlens/truthlens-client/src/backend"
)

// latestClaim is the hard-coded identifier the vote service expects; per-claim
// voting is an open point with the service contract owner.
const latestClaim = "latest"

type Vote struct {
	api *backend.Client
	hub *Hub
}

func NewVote(api *backend.Client, hub *Hub) Vote {
	return Vote{api: api, hub: hub}
}

// Cast forwards one agree/disagree vote and returns the updated split
// verbatim; the percentages are trusted from the server, never re-checked.
func (v Vote) Cast(c *gin.Context) {
	var req struct {
		Vote string `json:"vote" binding:"required,oneof=agree disagree"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	result, err := v.api.Vote(c.Request.Context(), latestClaim, req.Vote)
	if err != nil {
		log.Printf("vote: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"err": "vote failed"})
		return
	}

	v.hub.BroadcastVote(result)
	c.JSON(http.StatusOK, gin.H{
		"agree":    result.Agree,
		"disagree": result.Disagree,
		"summary":  fmt.Sprintf("%d%% agree, %d%% disagree", result.Agree, result.Disagree),
	})
}
