// Package tx defines the normalized transaction record captured from a
// wallet provider call, and the set of provider methods that require
// interception. Everything else a provider exposes is pass-through.
package tx

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Monitored provider methods. These are the two signing entry points a page
// can use to move funds; all other methods are untouched.
const (
	MethodSignTransaction = "eth_signTransaction"
	MethodSendTransaction = "eth_sendTransaction"
)

// Monitored reports whether a provider method requires interception.
func Monitored(method string) bool {
	return method == MethodSignTransaction || method == MethodSendTransaction
}

// ErrNotTransaction is returned when a monitored method is invoked without a
// usable transaction-shaped first parameter. Callers treat this as
// pass-through: no capture is emitted.
var ErrNotTransaction = errors.New("first parameter is not transaction-shaped")

// Request is an immutable record of one captured provider call.
//
// Field values are kept verbatim as the page supplied them — hexadecimal or
// decimal strings are not normalized at capture time. The scoring service
// owns normalization.
type Request struct {
	ID       string // correlation ID, unique per capture
	Method   string
	From     string
	To       string
	Value    string
	Data     string
	Gas      string
	GasPrice string
	ChainID  string
}

// Capture is the event emitted when a monitored call is intercepted.
// Origin identifies the emitting context so the relay can reject events
// that did not come from its own page.
type Capture struct {
	Origin  string
	Request *Request
}

// FromParams builds a Request from a monitored method's parameter list.
// The first parameter must be a map carrying at least one transaction field
// (from, to, value, or data); otherwise ErrNotTransaction is returned and
// the caller should forward the call unchanged.
func FromParams(method string, params []any) (*Request, error) {
	if len(params) == 0 {
		return nil, ErrNotTransaction
	}

	fields, ok := asFieldMap(params[0])
	if !ok {
		return nil, ErrNotTransaction
	}

	r := &Request{
		ID:       uuid.NewString(),
		Method:   method,
		From:     fields["from"],
		To:       fields["to"],
		Value:    fields["value"],
		Data:     fields["data"],
		Gas:      fields["gas"],
		GasPrice: fields["gasPrice"],
		ChainID:  fields["chainId"],
	}

	if r.From == "" && r.To == "" && r.Value == "" && r.Data == "" {
		return nil, ErrNotTransaction
	}
	return r, nil
}

// asFieldMap coerces the supported parameter shapes into a flat string map.
// Non-string field values are stringified, not reformatted.
func asFieldMap(param any) (map[string]string, bool) {
	switch m := param.(type) {
	case map[string]string:
		return m, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, v := range m {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				out[k] = s
				continue
			}
			out[k] = fmt.Sprintf("%v", v)
		}
		return out, true
	default:
		return nil, false
	}
}
