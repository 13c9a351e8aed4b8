package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"turtlewax/migrator/internal/config"
	"turtlewax/migrator/internal/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// SanityClient talks to the CMS HTTP API. Calls are blocking and are never retried for
// writes; a failed write is returned to the caller as is.
type SanityClient interface {
	CreateOrReplace(ctx context.Context, doc domain.Document) error
	CreateIfNotExists(ctx context.Context, doc domain.Document) error
	Patch(ctx context.Context, patch Patch, opts ...CommitOption) error
	// Commit applies all mutations in one transaction: either every mutation lands or none.
	Commit(ctx context.Context, mutations []Mutation, opts ...CommitOption) (*MutationResult, error)
	Query(ctx context.Context, query string, params map[string]any, result any) error
	UploadAsset(ctx context.Context, kind AssetKind, filename, contentType string, data []byte) (*Asset, error)
	// FindAssetBySHA1 returns the id of a stored asset with the given content hash, or "".
	FindAssetBySHA1(ctx context.Context, kind AssetKind, sha1 string) (string, error)
	Close() error
}

type commitOptions struct {
	autoGenerateArrayKeys bool
}

type CommitOption func(*commitOptions)

// WithAutoGenerateArrayKeys asks the API to add _key to array items that lack one.
func WithAutoGenerateArrayKeys() CommitOption {
	return func(o *commitOptions) { o.autoGenerateArrayKeys = true }
}

// APIError is a non-2xx answer from the CMS.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sanity %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type sanityClient struct {
	rl         ratelimit.Limiter
	config     config.SanityConfig
	httpClient *resty.Client
}

func NewSanityClient(cfg config.SanityConfig) SanityClient {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/v%s", cfg.BaseURL(), cfg.APIVersion)).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetAuthToken(cfg.WriteToken).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "turtlewax-migrator")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &sanityClient{
		rl:         rl,
		config:     cfg,
		httpClient: client,
	}
}

func (c *sanityClient) CreateOrReplace(ctx context.Context, doc domain.Document) error {
	if _, err := c.Commit(ctx, []Mutation{CreateOrReplace(doc)}); err != nil {
		return fmt.Errorf("failed to create or replace %s: %w", doc.DocumentID(), err)
	}
	return nil
}

func (c *sanityClient) CreateIfNotExists(ctx context.Context, doc domain.Document) error {
	if _, err := c.Commit(ctx, []Mutation{CreateIfNotExists(doc)}); err != nil {
		return fmt.Errorf("failed to create %s: %w", doc.DocumentID(), err)
	}
	return nil
}

func (c *sanityClient) Patch(ctx context.Context, patch Patch, opts ...CommitOption) error {
	if _, err := c.Commit(ctx, []Mutation{PatchMutation(patch)}, opts...); err != nil {
		return fmt.Errorf("failed to patch %s: %w", patch.ID, err)
	}
	return nil
}

func (c *sanityClient) Commit(ctx context.Context, mutations []Mutation, opts ...CommitOption) (*MutationResult, error) {
	options := commitOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	path := "/data/mutate/" + c.config.Dataset
	result := &MutationResult{}
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("returnIds", "true").
		SetQueryParam("visibility", "sync").
		SetQueryParam("transactionId", uuid.NewString()).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"mutations": mutations}).
		SetResult(result)
	if options.autoGenerateArrayKeys {
		req.SetQueryParam("autoGenerateArrayKeys", "true")
	}

	c.rl.Take()
	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("failed to send mutations: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Method: "POST", Path: path, StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	log.Debugf("Committed %d mutation(s) in transaction %s", len(mutations), result.TransactionID)
	return result, nil
}

func (c *sanityClient) Query(ctx context.Context, query string, params map[string]any, result any) error {
	path := "/data/query/" + c.config.Dataset
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("query", query)

	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode query param %s: %w", name, err)
		}
		req.SetQueryParam("$"+name, string(encoded))
	}
	if c.config.ReadToken != "" {
		req.SetAuthToken(c.config.ReadToken)
	}

	c.rl.Take()
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("failed to run query: %w", err)
	}
	if resp.IsError() {
		return &APIError{Method: "GET", Path: path, StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp.String()), &envelope); err != nil {
		return fmt.Errorf("failed to decode query response: %w", err)
	}
	if result == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}
	return nil
}

func (c *sanityClient) UploadAsset(ctx context.Context, kind AssetKind, filename, contentType string, data []byte) (*Asset, error) {
	path := fmt.Sprintf("/assets/%s/%s", kind, c.config.Dataset)

	var envelope struct {
		Document Asset `json:"document"`
	}

	c.rl.Take()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("filename", filename).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&envelope).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	if resp.IsError() {
		return nil, &APIError{Method: "POST", Path: path, StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	if envelope.Document.ID == "" {
		return nil, fmt.Errorf("upload of %s returned no asset id", filename)
	}

	log.Debugf("Uploaded %s as %s", filename, envelope.Document.ID)
	return &envelope.Document, nil
}

func (c *sanityClient) FindAssetBySHA1(ctx context.Context, kind AssetKind, sha1 string) (string, error) {
	var id string
	err := c.Query(ctx, `*[_type == $type && sha1hash == $hash][0]._id`, map[string]any{"type": kind.DocumentType(), "hash": sha1}, &id)
	if err != nil {
		return "", fmt.Errorf("failed to look up %s %s: %w", kind, sha1, err)
	}
	return id, nil
}

func (c *sanityClient) Close() error {
	return c.httpClient.Close()
}
