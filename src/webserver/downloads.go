package webserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truthlens/truthlens-client/src/backend"
	"github.com/truthlens/truthlens-client/src/factcheck"
	"github.com/truthlens/truthlens-client/src/session"
)

type Downloads struct {
	api  *backend.Client
	sess *session.Session
}

func NewDownloads(api *backend.Client, sess *session.Session) Downloads {
	return Downloads{api: api, sess: sess}
}

// Report streams the most recent result as the fixed-name JSON artifact. The
// export is bound to the exact object last installed in the session slot.
func (d Downloads) Report(c *gin.Context) {
	result, ok := d.sess.Result()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"err": "no report available"})
		return
	}
	data, err := factcheck.Report(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", factcheck.ReportFilename))
	c.Data(http.StatusOK, "application/json", data)
}

// LedgerProof fetches the attestation record and serves the fixed-template
// text artifact. An upstream failure comes back as one error the page
// surfaces as a blocking alert; no retry.
func (d Downloads) LedgerProof(c *gin.Context) {
	proof, err := d.api.LedgerProof(c.Request.Context())
	if err != nil {
		log.Printf("ledger proof: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"err": "could not fetch ledger proof"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", factcheck.ProofFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", proof.Artifact())
}
