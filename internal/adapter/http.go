package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login; on success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Cards implements [ServerAdapter].
func (h *httpServerAdapter) Cards() EntityRemote[*models.BusinessCard] {
	return &entityClient[*models.BusinessCard]{h: h, base: "/api/cards", kind: "card"}
}

// Contacts implements [ServerAdapter].
func (h *httpServerAdapter) Contacts() EntityRemote[*models.Contact] {
	return &entityClient[*models.Contact]{h: h, base: "/api/contacts", kind: "contact"}
}

// Leads implements [ServerAdapter].
func (h *httpServerAdapter) Leads() LeadRemote {
	return &leadClient{h: h}
}

// DeleteContact implements [ServerAdapter]. It sends
// DELETE /api/contacts/{id} and decodes the lead-revert report.
func (h *httpServerAdapter) DeleteContact(ctx context.Context, contactID string) (models.DeleteContactResult, error) {
	resp, err := h.authedRequest(ctx).Delete("/api/contacts/" + contactID)
	if err != nil {
		return models.DeleteContactResult{}, transportError("delete contact request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteContactResult{}, err
	}

	var result models.DeleteContactResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.DeleteContactResult{}, fmt.Errorf("decode delete contact response: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// entityClient is the generic HTTP implementation of [EntityRemote].
// The same request/decode cycle serves every entity type; only the
// route prefix differs.
type entityClient[T any] struct {
	h    *httpServerAdapter
	base string
	kind string
}

func (c *entityClient[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	resp, err := c.h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		Post(c.base)
	if err != nil {
		return zero, transportError("create "+c.kind+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var created T
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return zero, fmt.Errorf("decode create %s response: %w", c.kind, err)
	}
	return created, nil
}

func (c *entityClient[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T

	meta, err := metaOf(rec)
	if err != nil {
		return zero, err
	}

	resp, err := c.h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		Put(c.base + "/" + meta.RemoteID())
	if err != nil {
		return zero, transportError("update "+c.kind+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var updated T
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return zero, fmt.Errorf("decode update %s response: %w", c.kind, err)
	}
	return updated, nil
}

func (c *entityClient[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	resp, err := c.h.authedRequest(ctx).Get(c.base + "/" + id)
	if err != nil {
		return zero, transportError("get "+c.kind+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var rec T
	if err = json.Unmarshal(resp.Body(), &rec); err != nil {
		return zero, fmt.Errorf("decode get %s response: %w", c.kind, err)
	}
	return rec, nil
}

func (c *entityClient[T]) List(ctx context.Context, since models.Timestamp) ([]T, error) {
	req := c.h.authedRequest(ctx)
	if !since.IsZero() {
		req.SetQueryParam("since", strconv.FormatInt(int64(since), 10))
	}

	resp, err := req.Get(c.base)
	if err != nil {
		return nil, transportError("list "+c.kind+"s request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list %ss response: %w", c.kind, err)
	}
	return items, nil
}

func (c *entityClient[T]) Delete(ctx context.Context, id string) error {
	resp, err := c.h.authedRequest(ctx).Delete(c.base + "/" + id)
	if err != nil {
		return transportError("delete "+c.kind+" request", err)
	}
	return mapHTTPError(resp)
}

// metaOf extracts the sync bookkeeping from a record through the
// [models.SyncMeta] accessor.
func metaOf(rec any) (*models.SyncMeta, error) {
	m, ok := rec.(interface{ Meta() *models.SyncMeta })
	if !ok {
		return nil, fmt.Errorf("record %T carries no sync metadata", rec)
	}
	return m.Meta(), nil
}

// leadClient is the HTTP implementation of [LeadRemote].
type leadClient struct {
	h *httpServerAdapter
}

func (c *leadClient) Get(ctx context.Context, id string) (*models.Lead, error) {
	resp, err := c.h.authedRequest(ctx).Get("/api/leads/" + id)
	if err != nil {
		return nil, transportError("get lead request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lead models.Lead
	if err = json.Unmarshal(resp.Body(), &lead); err != nil {
		return nil, fmt.Errorf("decode get lead response: %w", err)
	}
	return &lead, nil
}

func (c *leadClient) List(ctx context.Context, since models.Timestamp) ([]*models.Lead, error) {
	req := c.h.authedRequest(ctx)
	if !since.IsZero() {
		req.SetQueryParam("since", strconv.FormatInt(int64(since), 10))
	}

	resp, err := req.Get("/api/leads")
	if err != nil {
		return nil, transportError("list leads request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var leads []*models.Lead
	if err = json.Unmarshal(resp.Body(), &leads); err != nil {
		return nil, fmt.Errorf("decode list leads response: %w", err)
	}
	return leads, nil
}

func (c *leadClient) Convert(ctx context.Context, leadID string) (models.ConversionResult, error) {
	resp, err := c.h.authedRequest(ctx).Post("/api/leads/" + leadID + "/convert")
	if err != nil {
		return models.ConversionResult{}, transportError("convert lead request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversionResult{}, err
	}

	var result models.ConversionResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ConversionResult{}, fmt.Errorf("decode convert lead response: %w", err)
	}
	return result, nil
}

func (c *leadClient) Delete(ctx context.Context, id string) error {
	resp, err := c.h.authedRequest(ctx).Delete("/api/leads/" + id)
	if err != nil {
		return transportError("delete lead request", err)
	}
	return mapHTTPError(resp)
}
