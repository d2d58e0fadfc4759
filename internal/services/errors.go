package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransport         = errors.New("request failed")
	ErrHTTPStatus        = errors.New("http error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrConfiguration     = errors.New("configuration error")
	ErrValidation        = errors.New("validation error")
)

// Tier classifies a failed backend interaction. Views render each tier
// differently but none of them is retried.
type Tier int

const (
	TierNone Tier = iota
	TierTransport
	TierHTTP
	TierMalformed
)

func (t Tier) String() string {
	switch t {
	case TierTransport:
		return "transport"
	case TierHTTP:
		return "http"
	case TierMalformed:
		return "malformed"
	default:
		return "none"
	}
}

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransport
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureTier maps an error produced by Wrap to its rendering tier.
func FailureTier(err error) Tier {
	switch {
	case err == nil:
		return TierNone
	case errors.Is(err, ErrTransport):
		return TierTransport
	case errors.Is(err, ErrHTTPStatus):
		return TierHTTP
	case errors.Is(err, ErrMalformedResponse):
		return TierMalformed
	default:
		return TierTransport
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
