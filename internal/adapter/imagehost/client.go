package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/baspana/backend/internal/usecase"
)

// ErrImageRejected indicates the host refused the uploaded binary.
var ErrImageRejected = errors.New("image rejected by host")

// ErrHostNotConfigured indicates no image host address was supplied.
var ErrHostNotConfigured = errors.New("image host not configured")

// Disabled is the client used when no host address is configured. Uploads
// fail; deletes succeed so local cleanup is never blocked.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, filename string, body io.Reader) (*usecase.HostedImage, error) {
	return nil, ErrHostNotConfigured
}

func (Disabled) Delete(ctx context.Context, remoteID string) error {
	return nil
}

// HTTPClient talks to the external image hosting service. Binaries are pushed
// as multipart form data; the host answers with a public URL and a remote id
// used for later deletion.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// uploadResponse mirrors JSON payload from the image host.
type uploadResponse struct {
	URL      string `json:"url"`
	RemoteID string `json:"id"`
}

// NewHTTPClient creates HTTP image host client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse image host url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("image host url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload pushes one image binary and returns its hosted location.
func (c *HTTPClient) Upload(ctx context.Context, filename string, body io.Reader) (*usecase.HostedImage, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/images")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data uploadResponse
		if err := json.Unmarshal(payload, &data); err != nil {
			return nil, err
		}
		if data.URL == "" {
			return nil, fmt.Errorf("image host returned empty url")
		}
		return &usecase.HostedImage{URL: data.URL, RemoteID: data.RemoteID}, nil
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return nil, ErrImageRejected
	default:
		payload, _ := io.ReadAll(resp.Body)
		c.logger.Error("image upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return nil, fmt.Errorf("image host error: %s", resp.Status)
	}
}

// Delete asks the host to drop a previously uploaded binary. A missing remote
// image is treated as already deleted.
func (c *HTTPClient) Delete(ctx context.Context, remoteID string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/images/", remoteID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		payload, _ := io.ReadAll(resp.Body)
		c.logger.Error("image delete failed", slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return fmt.Errorf("image host error: %s", resp.Status)
	}
}
