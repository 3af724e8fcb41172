// Package archive implements the HTTP/JSON client for the archive
// service's three-phase upload protocol: Initiate reserves a session
// and a write destination, Transfer streams the file bytes to that
// destination, Finalize publishes the upload. Each call is attempted
// at most once; sequencing across phases is the caller's contract.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/spinup/internal/logging"
)

// Client talks to one archive host with one credential. It is safe
// for concurrent use by multiple upload tasks.
type Client struct {
	host    string
	apiKey  string
	timeout time.Duration
	hc      *http.Client
	log     logging.Logger
}

// NewClient returns a Client for the given host and credential.
// timeout bounds the Initiate and Finalize round trips; Transfer is
// bounded only by ctx so large files are not cut off mid-stream.
func NewClient(host, apiKey string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		host:    host,
		apiKey:  apiKey,
		timeout: timeout,
		hc:      &http.Client{},
		log:     log,
	}
}

// Initiate reserves an upload session for a file of the given name
// and size. A 403 maps to ErrInvalidAPIKey, a 400 to ValidationError
// with the server's reason, everything else unexpected to
// TransportError.
func (c *Client) Initiate(ctx context.Context, fileName string, contentLength int64) (*UploadSession, error) {

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(initiateRequest{FileName: fileName, ContentLength: contentLength})
	if err != nil {
		return nil, &TransportError{Op: "initiate", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/v1/uploads", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "initiate", Err: err}
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "initiate", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidAPIKey
	case resp.StatusCode == http.StatusBadRequest:
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return nil, &TransportError{Op: "initiate", Err: fmt.Errorf("decoding error response: %w", err)}
		}
		return nil, &ValidationError{Reason: apiErr.Reason}
	case resp.StatusCode >= 300:
		return nil, &TransportError{Op: "initiate", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var session UploadSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, &TransportError{Op: "initiate", Err: fmt.Errorf("decoding response: %w", err)}
	}

	c.log.Debug(ctx, "upload initiated", "file", fileName, "session_id", session.ID)

	return &session, nil
}

// Transfer streams the file at localPath as the body of a PUT to the
// destination URL issued by Initiate. A non-2xx response counts as a
// failure.
func (c *Client) Transfer(ctx context.Context, localPath string, destinationURL string) error {

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", localPath, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, destinationURL, f)
	if err != nil {
		return &TransportError{Op: "transfer", Err: err}
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &TransportError{Op: "transfer", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &TransportError{Op: "transfer", Err: fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))}
	}

	return nil
}

// Finalize completes the session and returns the public URL of the
// published upload. A 403 maps to ErrInvalidAPIKey.
func (c *Client) Finalize(ctx context.Context, record FinalizationRecord) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(record)
	if err != nil {
		return "", &TransportError{Op: "finalize", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/v1/uploads/finalize", bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Op: "finalize", Err: err}
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", &TransportError{Op: "finalize", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return "", ErrInvalidAPIKey
	case resp.StatusCode >= 300:
		return "", &TransportError{Op: "finalize", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var fr finalizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return "", &TransportError{Op: "finalize", Err: fmt.Errorf("decoding response: %w", err)}
	}

	c.log.Debug(ctx, "upload finalized", "session_id", record.ID, "url", fr.URL)

	return fr.URL, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
