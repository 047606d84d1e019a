package wire

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDecoderDecode(t *testing.T) {
	input := "POST /submit?a=1 HTTP/1.0\r\n" +
		"Host: localhost\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n" +
		"hello"

	var req Request
	dec := NewRequestDecoder(strings.NewReader(input))
	require.NoError(t, dec.Decode(&req))

	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, "/submit?a=1", req.Target)
	assert.Equal(t, Version{1, 0}, req.Version)
	assert.Equal(t, []Field{
		{Name: "host", Value: "localhost"},
		{Name: "content-length", Value: "5"},
	}, req.Headers)

	// The body is left on the stream, untouched.
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestRequestDecoderDecodeNoHeaders(t *testing.T) {
	var req Request
	dec := NewRequestDecoder(strings.NewReader("GET / HTTP/1.0\r\n\r\n"))
	require.NoError(t, dec.Decode(&req))

	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, "/", req.Target)
	assert.Empty(t, req.Headers)
}

func TestRequestDecoderDuplicateHeadersKeepOrder(t *testing.T) {
	input := "GET / HTTP/1.0\r\n" +
		"Accept: text/html\r\n" +
		"ACCEPT: text/plain\r\n" +
		"\r\n"

	var req Request
	dec := NewRequestDecoder(strings.NewReader(input))
	require.NoError(t, dec.Decode(&req))

	assert.Equal(t, []Field{
		{Name: "accept", Value: "text/html"},
		{Name: "accept", Value: "text/plain"},
	}, req.Headers)
}

func TestRequestDecoderDecodeErrors(t *testing.T) {
	testcases := []struct {
		desc  string
		input string
	}{
		{
			desc:  "garbage request line",
			input: "GARBAGE\r\n\r\n",
		},
		{
			desc:  "unknown method",
			input: "BREW /pot HTTP/1.0\r\n\r\n",
		},
		{
			desc:  "lowercase method",
			input: "get / HTTP/1.0\r\n\r\n",
		},
		{
			desc:  "request line with extra parts",
			input: "GET / index HTTP/1.0\r\n\r\n",
		},
		{
			desc:  "missing version",
			input: "GET /\r\n\r\n",
		},
		{
			desc:  "header without colon",
			input: "GET / HTTP/1.0\r\nbroken header\r\n\r\n",
		},
		{
			desc:  "no terminating blank line before EOF",
			input: "GET / HTTP/1.0\r\nHost: localhost\r\n",
		},
		{
			desc:  "LF without CR",
			input: "GET / HTTP/1.0\n\n",
		},
		{
			desc:  "empty stream",
			input: "",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			var req Request
			dec := NewRequestDecoder(strings.NewReader(tc.input))
			assert.Error(t, dec.Decode(&req))
		})
	}
}
