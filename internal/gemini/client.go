package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oukeidos/gemtrans/internal/apperrors"
	"google.golang.org/api/googleapi"
)

const (
	// DefaultEndpoint is the base URL used when Options.Endpoint is empty.
	DefaultEndpoint = "https://generativelanguage.googleapis.com"
	// RequestTimeout bounds each generateContent call.
	RequestTimeout = 60 * time.Second

	apiKeyHeader = "X-goog-api-key"
)

// Request is a transport-neutral HTTP request.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    []byte
	Timeout time.Duration
}

// Response is what a Transport hands back. Body is fully read.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport is supplied by the host; the translator never dials on its own.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// ThinkingBudget selects the thinking mode. The zero value leaves it off.
type ThinkingBudget struct {
	enabled bool
	tokens  int
}

var (
	ThinkingOff     = ThinkingBudget{}
	ThinkingDynamic = ThinkingBudget{enabled: true, tokens: -1}
)

// FixedThinking returns a budget of n tokens; n < 0 means dynamic.
func FixedThinking(n int) ThinkingBudget {
	if n < 0 {
		return ThinkingDynamic
	}
	return ThinkingBudget{enabled: true, tokens: n}
}

func (b ThinkingBudget) Enabled() bool { return b.enabled }
func (b ThinkingBudget) Tokens() int   { return b.tokens }

func (b ThinkingBudget) String() string {
	switch {
	case !b.enabled:
		return "off"
	case b.tokens < 0:
		return "dynamic"
	default:
		return fmt.Sprintf("%d", b.tokens)
	}
}

// Options is the per-call configuration snapshot.
type Options struct {
	Endpoint     string
	Model        string
	APIKey       string
	GoogleSearch bool
	Thinking     ThinkingBudget
	// Temperature overrides the variant default when non-nil.
	Temperature *float64
	Variant     Variant
}

func (o Options) variant() Variant {
	if o.Variant.isZero() {
		return DefaultVariant
	}
	return o.Variant
}

// ResolvedModel returns the model that a request with these options targets.
func (o Options) ResolvedModel() string {
	if m := strings.TrimSpace(o.Model); m != "" {
		return m
	}
	return o.variant().DefaultModel
}

// ResolvedTemperature returns the temperature that will be sent.
func (o Options) ResolvedTemperature() float64 {
	if o.Temperature != nil {
		return *o.Temperature
	}
	return o.variant().DefaultTemperature
}

// APIURL returns {endpoint}/v1beta/models/{model}:generateContent.
func (o Options) APIURL() string {
	base := strings.TrimRight(strings.TrimSpace(o.Endpoint), "/")
	if base == "" {
		base = DefaultEndpoint
	}
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, o.ResolvedModel())
}

// Result is a translation plus the upstream usage report.
type Result struct {
	Text  string
	Model string
	Usage UsageMetadata
}

// Translator turns text into one generateContent call. It holds no per-call
// state and is safe for concurrent use.
type Translator struct {
	transport Transport
}

// NewTranslator returns a Translator that sends through t.
func NewTranslator(t Transport) *Translator {
	return &Translator{transport: t}
}

// Translate translates text from one language to another and returns the trimmed result.
func (t *Translator) Translate(ctx context.Context, text, from, to string, opts Options) (string, error) {
	res, err := t.TranslateWithUsage(ctx, text, from, to, opts)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// TranslateWithUsage is Translate that also reports token usage.
func (t *Translator) TranslateWithUsage(ctx context.Context, text, from, to string, opts Options) (*Result, error) {
	req, err := BuildRequest(text, from, to, opts)
	if err != nil {
		return nil, err
	}
	if t.transport == nil {
		return nil, apperrors.Config(fmt.Errorf("gemini: no transport configured"))
	}

	requestID := uuid.NewString()
	start := time.Now()
	resp, err := t.transport.Send(ctx, req)
	if err != nil {
		slog.Debug("Gemini request failed", "request_id", requestID, "error", err)
		return nil, classifyTransportError(err)
	}
	if resp == nil {
		slog.Debug("Gemini transport returned no response", "request_id", requestID)
		return nil, apperrors.Transient(errEmptyResponse)
	}
	slog.Debug("Gemini API Response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"model", opts.ResolvedModel(),
		"latency", time.Since(start).Round(time.Millisecond),
	)

	if !resp.OK() {
		err := classifyHTTPError(resp)
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			slog.Debug("Gemini API error", "request_id", requestID, "status", gerr.Code, "reason", gerr.Message)
		}
		return nil, err
	}

	text, usage, err := parseResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	if usage.TotalTokenCount > 0 {
		slog.Debug("Gemini usage", "request_id", requestID, "usage_total", usage.TotalTokenCount)
	}
	return &Result{Text: text, Model: opts.ResolvedModel(), Usage: usage}, nil
}

// BuildRequest assembles the exact request Translate would send. It fails
// before any network activity when the API key is missing.
func BuildRequest(text, from, to string, opts Options) (*Request, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(buildPayload(text, from, to, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set(apiKeyHeader, apiKey)

	return &Request{
		Method:  http.MethodPost,
		URL:     opts.APIURL(),
		Header:  header,
		Body:    body,
		Timeout: RequestTimeout,
	}, nil
}

func buildPayload(text, from, to string, opts Options) GenerateContentRequest {
	v := opts.variant()
	protocol := Content{Parts: []Part{{Text: SystemProtocol}}}
	user := Content{Role: "user", Parts: []Part{{Text: v.Prompt(text, from, to)}}}

	var payload GenerateContentRequest
	switch v.Placement {
	case PlacementSystemInstruction:
		payload.SystemInstruction = &protocol
		payload.Contents = []Content{user}
	default:
		protocol.Role = "user"
		payload.Contents = []Content{protocol, user}
	}

	if opts.GoogleSearch {
		payload.Tools = []Tool{{GoogleSearch: &GoogleSearch{}}}
	}

	payload.GenerationConfig.Temperature = opts.ResolvedTemperature()
	if opts.Thinking.Enabled() {
		payload.GenerationConfig.ThinkingConfig = &ThinkingConfig{ThinkingBudget: opts.Thinking.Tokens()}
	}

	payload.SafetySettings = append([]SafetySetting(nil), safetySettings...)
	return payload
}

// parseResponse joins the text parts of the first candidate.
func parseResponse(body []byte) (string, UsageMetadata, error) {
	var data GenerateContentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", UsageMetadata{}, apperrors.New(apperrors.KindValidation, noContentMessage, fmt.Errorf("failed to decode response: %w", err))
	}

	var usage UsageMetadata
	if data.UsageMetadata != nil {
		usage = *data.UsageMetadata
	}

	if len(data.Candidates) == 0 {
		return "", usage, apperrors.New(apperrors.KindValidation, noContentMessage, fmt.Errorf("no candidates returned from Gemini"))
	}
	candidate := data.Candidates[0]
	if candidate.Content == nil || candidate.Content.Parts == nil {
		return "", usage, apperrors.New(apperrors.KindValidation, noContentMessage, fmt.Errorf("first candidate has no content parts (finish_reason=%s)", candidate.FinishReason))
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text == "" {
			continue
		}
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), usage, nil
}
