// Package cms writes onboarding profiles to a hosted headless CMS through
// its HTTP mutation and asset APIs.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/louisbranch/onboard/internal/platform/timeouts"
	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Config locates the CMS dataset.
type Config struct {
	BaseURL    string
	Dataset    string
	APIVersion string
	Token      string
	HTTPClient *http.Client
	// Logger reports failed asset cleanups.
	Logger *log.Logger
}

// Client implements profile.Writer against the CMS.
type Client struct {
	base    *url.URL
	dataset string
	version string
	token   string
	http    *http.Client
	logger  *log.Logger
}

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("cms base url %q is invalid", cfg.BaseURL)
	}
	dataset := strings.TrimSpace(cfg.Dataset)
	if dataset == "" {
		return nil, errors.New("cms dataset is required")
	}
	version := strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if version == "" {
		return nil, errors.New("cms api version is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeouts.BackendRequest}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		base:    base,
		dataset: dataset,
		version: version,
		token:   strings.TrimSpace(cfg.Token),
		http:    client,
		logger:  logger,
	}, nil
}

// CreateAgentProfile uploads the agent's images and creates the profile
// document.
func (c *Client) CreateAgentProfile(ctx context.Context, p *profile.AgentProfile) (string, error) {
	doc := document{
		"_type":            "agentProfile",
		"first_name":       p.FirstName,
		"last_name":        p.LastName,
		"email":            p.Email,
		"phone":            p.Phone,
		"country":          p.Country,
		"bio":              p.Bio,
		"skills":           nonNil(p.Skills),
		"industries":       nonNil(p.Industries),
		"rate_band":        p.RateBand,
		"availability":     p.Availability,
		"experience_level": p.ExperienceLevel,
		"social_links":     socialLinks(p.SocialLinks),
	}
	return c.createWithImages(ctx, doc, p.ProfilePicture, p.BannerImage)
}

// CreateClientProfile uploads the client's images and creates the profile
// document.
func (c *Client) CreateClientProfile(ctx context.Context, p *profile.ClientProfile) (string, error) {
	doc := document{
		"_type":           "clientProfile",
		"first_name":      p.FirstName,
		"last_name":       p.LastName,
		"email":           p.Email,
		"phone":           p.Phone,
		"company_name":    p.CompanyName,
		"country":         p.Country,
		"industry":        p.Industry,
		"services_needed": nonNil(p.ServicesNeeded),
		"budget_band":     p.BudgetBand,
		"timeline":        p.Timeline,
		"project_summary": p.ProjectSummary,
		"social_links":    socialLinks(p.SocialLinks),
	}
	return c.createWithImages(ctx, doc, p.ProfilePicture, p.BannerImage)
}

var _ profile.Writer = (*Client)(nil)

type document map[string]any

// createWithImages uploads the attachments, then creates doc. Assets
// uploaded for a document that was never created are deleted again.
func (c *Client) createWithImages(ctx context.Context, doc document, picture, banner *wizard.Attachment) (string, error) {
	assetIDs, err := c.attachImages(ctx, doc, picture, banner)
	if err == nil {
		var docID string
		docID, err = c.create(ctx, doc)
		if err == nil {
			return docID, nil
		}
	}
	c.discardAssets(ctx, assetIDs)
	return "", err
}

func (c *Client) attachImages(ctx context.Context, doc document, picture, banner *wizard.Attachment) ([]string, error) {
	var assetIDs []string
	for _, slot := range []struct {
		field string
		file  *wizard.Attachment
	}{
		{field: string(profile.FieldProfilePicture), file: picture},
		{field: string(profile.FieldBannerImage), file: banner},
	} {
		if slot.file == nil {
			continue
		}
		assetID, err := c.uploadImage(ctx, slot.file)
		if err != nil {
			return assetIDs, fmt.Errorf("upload %s: %w", slot.field, err)
		}
		assetIDs = append(assetIDs, assetID)
		doc[slot.field] = map[string]any{
			"_type": "image",
			"asset": map[string]any{"_type": "reference", "_ref": assetID},
		}
	}
	return assetIDs, nil
}

// discardAssets deletes orphaned uploads. Failures are only logged; the
// submission has already failed.
func (c *Client) discardAssets(ctx context.Context, assetIDs []string) {
	if len(assetIDs) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.BackendRequest)
	defer cancel()
	for _, assetID := range assetIDs {
		if err := c.mutate(ctx, map[string]any{"delete": map[string]any{"id": assetID}}); err != nil {
			c.logger.Printf("cms: delete orphaned asset %s: %v", assetID, err)
		}
	}
}

func (c *Client) mutate(ctx context.Context, mutation map[string]any) error {
	payload, err := json.Marshal(map[string]any{"mutations": []any{mutation}})
	if err != nil {
		return fmt.Errorf("encode cms mutation: %w", err)
	}
	_, err = c.do(ctx, c.endpoint("data", "mutate"), "application/json", bytes.NewReader(payload))
	return err
}

func (c *Client) uploadImage(ctx context.Context, file *wizard.Attachment) (string, error) {
	endpoint := c.endpoint("assets", "images")
	if name := strings.TrimSpace(file.Filename); name != "" {
		endpoint += "?" + url.Values{"filename": {name}}.Encode()
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	body, err := c.do(ctx, endpoint, contentType, bytes.NewReader(file.Data))
	if err != nil {
		return "", err
	}
	assetID := gjson.GetBytes(body, "document._id").String()
	if assetID == "" {
		return "", errors.New("cms upload response has no asset id")
	}
	return assetID, nil
}

func (c *Client) create(ctx context.Context, doc document) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"mutations": []any{map[string]any{"create": doc}},
	})
	if err != nil {
		return "", fmt.Errorf("encode cms mutation: %w", err)
	}
	endpoint := c.endpoint("data", "mutate") + "?returnIds=true"
	body, err := c.do(ctx, endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	docID := gjson.GetBytes(body, "results.0.id").String()
	if docID == "" {
		return "", errors.New("cms mutation response has no document id")
	}
	return docID, nil
}

func (c *Client) endpoint(segments ...string) string {
	parts := append([]string{"v" + c.version}, segments...)
	parts = append(parts, c.dataset)
	return c.base.JoinPath(parts...).String()
}

// do sends one POST. Client errors that describe the request become
// *profile.RejectedError; everything else is a plain error.
func (c *Client) do(ctx context.Context, endpoint string, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build cms request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read cms response: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	if rejectable(resp.StatusCode) {
		return nil, rejection(raw)
	}
	return nil, fmt.Errorf("cms returned %s: %s", resp.Status, describe(raw))
}

func rejectable(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return status >= 400 && status < 500
}

func rejection(raw []byte) *profile.RejectedError {
	rejected := &profile.RejectedError{Message: describe(raw)}
	gjson.GetBytes(raw, "error.items").ForEach(func(_, item gjson.Result) bool {
		field := item.Get("path.0").String()
		message := item.Get("message").String()
		if field == "" || message == "" {
			return true
		}
		if rejected.Fields == nil {
			rejected.Fields = map[string]string{}
		}
		rejected.Fields[field] = message
		return true
	})
	return rejected
}

func describe(raw []byte) string {
	if msg := gjson.GetBytes(raw, "error.description").String(); msg != "" {
		return msg
	}
	return gjson.GetBytes(raw, "message").String()
}

func socialLinks(links []wizard.Link) []map[string]any {
	out := make([]map[string]any, 0, len(links))
	for idx, link := range links {
		out = append(out, map[string]any{
			"_key":     fmt.Sprintf("link%d", idx),
			"_type":    "socialLink",
			"platform": link.Platform,
			"url":      link.URL,
		})
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
