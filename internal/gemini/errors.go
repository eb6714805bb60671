package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oukeidos/gemtrans/internal/apperrors"
	"google.golang.org/api/googleapi"
)

const noContentMessage = "Gemini API returned no valid content"

var errEmptyResponse = errors.New("gemini transport returned an empty response")

// ErrMissingAPIKey is returned before any request is sent.
var ErrMissingAPIKey = apperrors.New(
	apperrors.KindConfig,
	"Missing Gemini API key. Please set apiKey in the plugin configuration.",
	nil,
)

func classifyTransportError(err error) error {
	wrapped := fmt.Errorf("gemini request failed: %w", err)
	if errors.Is(err, context.Canceled) {
		return apperrors.New(apperrors.KindTransient, "Gemini request was canceled.", wrapped)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.New(apperrors.KindTransient, "Gemini request timed out.", wrapped)
	}
	return apperrors.New(apperrors.KindTransient, "Gemini request failed due to a temporary network/runtime error.", wrapped)
}

// classifyHTTPError maps a non-2xx response to an apperrors kind by status
// code. The message always carries the status code and the raw body; the
// decoded *googleapi.Error is kept as the cause for errors.As.
func classifyHTTPError(resp *Response) error {
	msg := fmt.Sprintf("Http Request Error\nHttp Status: %d\n%s", resp.StatusCode, compactBody(resp.Body))

	var kind apperrors.Kind
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		kind = apperrors.KindRateLimit
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		kind = apperrors.KindAuth
	case resp.StatusCode >= 500:
		kind = apperrors.KindTransient
	default:
		kind = apperrors.KindBadRequest
	}
	return apperrors.HTTP(kind, resp.StatusCode, msg, decodeGoogleError(resp))
}

// decodeGoogleError parses the standard {"error":{"code","message",...}} envelope.
func decodeGoogleError(resp *Response) *googleapi.Error {
	hr := &http.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       io.NopCloser(bytes.NewReader(resp.Body)),
	}
	err := googleapi.CheckResponse(hr)
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == 0 {
			gerr.Code = resp.StatusCode
		}
		return gerr
	}
	return &googleapi.Error{Code: resp.StatusCode, Body: string(resp.Body)}
}

func compactBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(body))
}
