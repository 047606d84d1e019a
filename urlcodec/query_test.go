package urlcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeQuery(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected []Pair
		wantErr  bool
	}{
		{
			desc:  "pairs keep their order",
			input: "b=2&a=1&c=3",
			expected: []Pair{
				{Key: "b", Value: "2"},
				{Key: "a", Value: "1"},
				{Key: "c", Value: "3"},
			},
		},
		{
			desc:     "keys and values are decoded",
			input:    "na%C3%AFve=%e2%82%ac",
			expected: []Pair{{Key: "naïve", Value: "€"}},
		},
		{
			desc:     "empty value",
			input:    "key=",
			expected: []Pair{{Key: "key", Value: ""}},
		},
		{
			desc:  "value split on first equals only",
			input: "eq=a=b",
			expected: []Pair{
				{Key: "eq", Value: "a=b"},
			},
		},
		{
			desc:     "duplicate keys are preserved",
			input:    "k=1&k=2",
			expected: []Pair{{Key: "k", Value: "1"}, {Key: "k", Value: "2"}},
		},
		{
			desc:     "empty query",
			input:    "",
			expected: nil,
		},
		{
			desc:    "entry without equals fails the whole parse",
			input:   "a=1&b",
			wantErr: true,
		},
		{
			desc:    "undecodable key fails",
			input:   "a%=1",
			wantErr: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			pairs, err := DecodeQuery(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, pairs)
		})
	}
}
