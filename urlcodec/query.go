package urlcodec

import (
	"strings"

	"github.com/pkg/errors"
)

// Pair is one key-value entry of a query string or form body.
// Order of pairs is significant and preserved.
type Pair struct{ Key, Value string }

// DecodeQuery splits a "key=value&key=value" sequence into decoded
// pairs. Each entry is split on its first '='; an entry without one
// fails the whole parse. Key and value are percent-decoded
// independently.
func DecodeQuery(s string) ([]Pair, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, "&")
	pairs := make([]Pair, 0, len(parts))

	for _, part := range parts {
		rawKey, rawValue, found := strings.Cut(part, "=")
		if !found {
			return nil, errors.Errorf("query entry has no '=': %q", part)
		}

		key, err := Decode(rawKey)
		if err != nil {
			return nil, errors.Wrap(err, "decoding key")
		}
		value, err := Decode(rawValue)
		if err != nil {
			return nil, errors.Wrap(err, "decoding value")
		}

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs, nil
}
