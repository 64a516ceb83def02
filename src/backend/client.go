package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

// Client talks to the remote analysis backend. The backend is a black box:
// verdict computation, deepfake detection, and ledger signing all live behind
// these three endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

// Submit sends one claim as a multipart form and decodes the fact-check
// result. Optional fields are only appended when populated; the chat message
// and structured claim text are never both transmitted.
func (c *Client) Submit(ctx context.Context, in factcheck.ClaimInput) (*factcheck.Result, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	if text := in.ClaimText(); text != "" {
		if err := form.WriteField("claim_text", text); err != nil {
			return nil, fmt.Errorf("encode claim_text: %w", err)
		}
	}
	if in.URL != "" {
		if err := form.WriteField("claim_url", in.URL); err != nil {
			return nil, fmt.Errorf("encode claim_url: %w", err)
		}
	}
	if in.Image != nil {
		part, err := form.CreateFormFile("image", in.Image.Name)
		if err != nil {
			return nil, fmt.Errorf("encode image: %w", err)
		}
		if _, err := part.Write(in.Image.Data); err != nil {
			return nil, fmt.Errorf("encode image: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	url := fmt.Sprintf("%s/api/factcheck", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("factcheck API returned status %d", resp.StatusCode)
	}

	var result factcheck.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode factcheck response: %w", err)
	}
	result.Normalize()
	return &result, nil
}

type voteRequest struct {
	Claim string `json:"claim"`
	Vote  string `json:"vote"`
}

// Vote casts one community vote and returns the updated agreement split.
func (c *Client) Vote(ctx context.Context, claim, choice string) (factcheck.VoteResult, error) {
	payload, err := json.Marshal(voteRequest{Claim: claim, Vote: choice})
	if err != nil {
		return factcheck.VoteResult{}, err
	}

	url := fmt.Sprintf("%s/api/community/vote", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return factcheck.VoteResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return factcheck.VoteResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return factcheck.VoteResult{}, fmt.Errorf("vote API returned status %d", resp.StatusCode)
	}

	var result factcheck.VoteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return factcheck.VoteResult{}, fmt.Errorf("decode vote response: %w", err)
	}
	return result, nil
}

// LedgerProof fetches the current attestation record. Any non-2xx status is
// an error the caller surfaces as a ledger failure.
func (c *Client) LedgerProof(ctx context.Context) (factcheck.LedgerProof, error) {
	url := fmt.Sprintf("%s/api/ledger/proof", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return factcheck.LedgerProof{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return factcheck.LedgerProof{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return factcheck.LedgerProof{}, fmt.Errorf("ledger API returned status %d", resp.StatusCode)
	}

	var proof factcheck.LedgerProof
	if err := json.NewDecoder(resp.Body).Decode(&proof); err != nil {
		return factcheck.LedgerProof{}, fmt.Errorf("decode ledger proof: %w", err)
	}
	return proof, nil
}
