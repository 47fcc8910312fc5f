package world

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/verdantgames/GardenGrove_Go/internal/domain"
)

const defaultRequestTimeout = 10 * time.Second

// Client is the HTTP implementation of Gateway against the world platform's
// REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a platform gateway client. baseURL is the platform API
// root, apiKey the interactive credentials secret.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

type dropAssetPayload struct {
	URLSlug     string `json:"urlSlug"`
	UniqueName  string `json:"uniqueName"`
	Layer0      string `json:"layer0"`
	SquareIndex int    `json:"squareIndex"`
	VisitorID   string `json:"visitorId"`
	PlotAssetID string `json:"plotAssetId"`
}

type dropAssetResponse struct {
	ID string `json:"id"`
}

// DropPlantAsset drops a plant image into the world and returns the new
// dropped asset id.
func (c *Client) DropPlantAsset(ctx context.Context, req DropPlantRequest) (string, error) {
	payload := dropAssetPayload{
		URLSlug:     req.Credentials.URLSlug,
		UniqueName:  req.UniqueName,
		Layer0:      req.Image,
		SquareIndex: req.SquareIndex,
		VisitorID:   req.Credentials.VisitorID,
		PlotAssetID: req.Credentials.AssetID,
	}

	var resp dropAssetResponse
	if err := c.post(ctx, "/dropped-assets", payload, &resp); err != nil {
		return "", fmt.Errorf("failed to drop plant asset: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("platform returned empty dropped asset id")
	}
	return resp.ID, nil
}

// RemoveDroppedAsset deletes a dropped asset from the world.
func (c *Client) RemoveDroppedAsset(ctx context.Context, creds domain.Credentials, assetID string) error {
	path := fmt.Sprintf("/worlds/%s/dropped-assets/%s/delete", creds.URLSlug, assetID)
	if err := c.post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to remove dropped asset %s: %w", assetID, err)
	}
	return nil
}

// UpdatePlantAsset swaps a dropped plant's image for a new growth stage.
func (c *Client) UpdatePlantAsset(ctx context.Context, creds domain.Credentials, assetID, image string, growLevel int) error {
	path := fmt.Sprintf("/worlds/%s/dropped-assets/%s", creds.URLSlug, assetID)
	payload := map[string]interface{}{
		"layer0":    image,
		"growLevel": growLevel,
	}
	if err := c.post(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update dropped asset %s: %w", assetID, err)
	}
	return nil
}

// UpdatePlotClickable rewrites the plot's clickable link after a claim.
func (c *Client) UpdatePlotClickable(ctx context.Context, creds domain.Credentials, plotAssetID, title, link string) error {
	path := fmt.Sprintf("/worlds/%s/dropped-assets/%s/click-type", creds.URLSlug, plotAssetID)
	payload := map[string]interface{}{
		"clickableLink":      link,
		"clickableLinkTitle": title,
		"isOpenLinkInDrawer": true,
	}
	if err := c.post(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update plot clickable: %w", err)
	}
	return nil
}

// TriggerParticle fires a particle effect at a dropped asset.
func (c *Client) TriggerParticle(ctx context.Context, creds domain.Credentials, assetID, effectName string) error {
	path := fmt.Sprintf("/worlds/%s/particles", creds.URLSlug)
	payload := map[string]interface{}{
		"name":     effectName,
		"assetId":  assetID,
		"duration": 3,
	}
	if err := c.post(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to trigger particle: %w", err)
	}
	return nil
}

// FireToast shows a toast in the visitor's world client.
func (c *Client) FireToast(ctx context.Context, creds domain.Credentials, title, text string) error {
	path := fmt.Sprintf("/worlds/%s/toasts", creds.URLSlug)
	payload := map[string]interface{}{
		"title":     title,
		"text":      text,
		"visitorId": creds.VisitorID,
	}
	if err := c.post(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to fire toast: %w", err)
	}
	return nil
}

// post sends a JSON POST and decodes the response into out when non-nil.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Bound the error body so platform errors stay loggable
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("platform returned %d: %s", resp.StatusCode, string(snippet))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
