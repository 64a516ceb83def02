package webserver

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truthlens/truthlens-client/src/backend"
	"github.com/truthlens/truthlens-client/src/factcheck"
	"github.com/truthlens/truthlens-client/src/render"
	"github.com/truthlens/truthlens-client/src/session"
)

type Submit struct {
	api  *backend.Client
	sess *session.Session
}

func NewSubmit(api *backend.Client, sess *session.Session) Submit {
	return Submit{api: api, sess: sess}
}

// Panels carries one rendered fragment per page region; the page fans them
// out without inspecting their contents.
type Panels struct {
	Verdict    template.HTML          `json:"verdict"`
	Reasoning  template.HTML          `json:"reasoning"`
	Provenance render.ProvenancePanel `json:"provenance"`
	Social     template.HTML          `json:"social"`
}

type submitResponse struct {
	Message    session.Message `json:"message"`
	Panels     Panels          `json:"panels"`
	LedgerHash string          `json:"ledger_hash,omitempty"`
	// Current is false when a newer submission overtook this one while it was
	// in flight; the card is still worth appending, but the shared panels and
	// the export binding belong to the newer result.
	Current bool `json:"current"`
}

// Handle drives one submission: resolve the input, append the user message,
// call the backend, fan the result out into the panel renderers. An empty
// input is a silent no-op; a failed call yields one system message and no
// partial panels.
func (h Submit) Handle(c *gin.Context) {
	in := collectInput(c)
	label := in.DisplayLabel()
	if label == "" {
		c.Status(http.StatusNoContent)
		return
	}

	seq := h.sess.NextSubmission()
	msg := h.sess.Append(session.RoleUser, label)

	result, err := h.api.Submit(c.Request.Context(), in)
	if err != nil {
		log.Printf("submit %d: %v", seq, err)
		h.sess.Append(session.RoleSystem, session.BackendErrorText)
		c.JSON(http.StatusBadGateway, gin.H{"err": session.BackendErrorText})
		return
	}

	current := h.sess.StoreResult(seq, result)
	c.JSON(http.StatusOK, submitResponse{
		Message: msg,
		Panels: Panels{
			Verdict:    render.Verdict(result),
			Reasoning:  render.Reasoning(result.Reasoning),
			Provenance: render.Provenance(result.Provenance),
			Social:     render.Social(result.SocialSignals),
		},
		LedgerHash: result.LedgerHashText(),
		Current:    current,
	})
}

// Chat returns the conversation log so a reloaded page can rebuild it.
func (h Submit) Chat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.sess.Messages()})
}

// collectInput reads the four submission sources from the multipart form.
func collectInput(c *gin.Context) factcheck.ClaimInput {
	in := factcheck.ClaimInput{
		Message: strings.TrimSpace(c.PostForm("chat_field")),
		Text:    strings.TrimSpace(c.PostForm("claim_text")),
		URL:     strings.TrimSpace(c.PostForm("claim_url")),
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		return in
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("read claim image: %v", err)
		return in
	}
	in.Image = &factcheck.ImageAttachment{Name: header.Filename, Data: data}
	return in
}
