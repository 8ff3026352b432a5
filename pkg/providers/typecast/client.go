package typecast

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/neosapience/typecast-mcp/pkg/errorsx"
	"github.com/neosapience/typecast-mcp/pkg/redact"
	"github.com/neosapience/typecast-mcp/pkg/tts"
)

// Config holds the connection settings for the remote API.
type Config struct {
	APIHost string
	APIKey  string

	// HTTPClient overrides the transport, mainly for tests. The default
	// client carries no deadline; callers bound latency via ctx.
	HTTPClient *http.Client
}

// Client is a thin wrapper over the Typecast HTTP API. Each method issues
// exactly one request and never retries; rate limits and transient server
// errors surface as RemoteAPIError for the caller to act on.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// New validates the connection settings and builds a client.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIHost) == "" {
		return nil, errorsx.New(errorsx.ReasonConfig, "api host is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errorsx.New(errorsx.ReasonConfig, "api key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	log.Debug("typecast client ready",
		slog.String("host", cfg.APIHost),
		slog.String("api_key", redact.APIKey(cfg.APIKey)))
	return &Client{cfg: cfg, http: httpClient, log: log}, nil
}

// VoiceFilter narrows a voice listing. All selectors are optional and are
// only ever turned into a query string.
type VoiceFilter struct {
	Model  string
	Gender string
	Age    string
}

// Voice describes one synthetic speaker identity exposed by the API.
type Voice struct {
	VoiceID   string   `json:"voice_id"`
	VoiceName string   `json:"voice_name"`
	Model     string   `json:"model"`
	Emotions  []string `json:"emotions"`
	Gender    string   `json:"gender,omitempty"`
	Age       string   `json:"age,omitempty"`
}

// RemoteAPIError is a non-2xx response from the API. The body is kept
// verbatim for caller-visible diagnostics.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e RemoteAPIError) Error() string {
	return fmt.Sprintf("typecast api: status %d: %s", e.StatusCode, e.Body)
}

// RateLimited reports whether the account's concurrent-request ceiling
// was hit. The caller decides whether to retry; this client never does.
func (e RemoteAPIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// ListVoices lists voices matching the filter. A filter carrying only a
// model goes to the v1 endpoint; gender or age selectors upgrade the call
// to v2, which is the only version that understands them.
func (c *Client) ListVoices(ctx context.Context, filter VoiceFilter) ([]Voice, error) {
	if filter.Model != "" {
		if _, err := tts.ParseModel(filter.Model); err != nil {
			return nil, err
		}
	}
	q := url.Values{}
	if filter.Model != "" {
		q.Set("model", filter.Model)
	}
	path := "/v1/voices"
	if filter.Gender != "" || filter.Age != "" {
		path = "/v2/voices"
		if filter.Gender != "" {
			q.Set("gender", filter.Gender)
		}
		if filter.Age != "" {
			q.Set("age", filter.Age)
		}
	}
	body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	var voices []Voice
	if err := json.Unmarshal(body, &voices); err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("decode voices: %w", err), errorsx.ReasonRemoteAPI)
	}
	return voices, nil
}

// GetVoice fetches the detail of one voice by id.
func (c *Client) GetVoice(ctx context.Context, voiceID string) (Voice, error) {
	if strings.TrimSpace(voiceID) == "" {
		return Voice{}, errorsx.Wrap(tts.ValidationError{Field: "voice_id", Constraint: "must not be empty"}, errorsx.ReasonValidation)
	}
	body, err := c.do(ctx, http.MethodGet, "/v2/voices/"+url.PathEscape(voiceID), nil, nil)
	if err != nil {
		return Voice{}, err
	}
	var voice Voice
	if err := json.Unmarshal(body, &voice); err != nil {
		return Voice{}, errorsx.Wrap(fmt.Errorf("decode voice: %w", err), errorsx.ReasonRemoteAPI)
	}
	return voice, nil
}

// Synthesize posts a validated request and returns the audio bytes of the
// response exactly as received.
func (c *Client) Synthesize(ctx context.Context, req tts.Request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("encode request: %w", err), errorsx.ReasonRemoteAPI)
	}
	return c.do(ctx, http.MethodPost, "/v1/text-to-speech", nil, payload)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.APIHost, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonRemoteAPI)
	}
	req.Header.Set("X-API-KEY", c.cfg.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	c.log.Debug("typecast request",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("typecast request failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return nil, errorsx.Wrap(err, errorsx.ReasonRemoteAPI)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("read response: %w", err), errorsx.ReasonRemoteAPI)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := RemoteAPIError{StatusCode: resp.StatusCode, Body: string(raw)}
		reason := errorsx.ReasonRemoteAPI
		if apiErr.RateLimited() {
			reason = errorsx.ReasonRateLimit
		}
		c.log.Warn("typecast non-2xx response",
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode))
		return nil, errorsx.Wrap(apiErr, reason)
	}

	c.log.Debug("typecast response",
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Int("size_bytes", len(raw)))
	return raw, nil
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var apiErr RemoteAPIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
