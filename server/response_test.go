package server

import (
	"testing"

	"minihttp/lib/types/pointer"
	"minihttp/wire"

	"github.com/stretchr/testify/assert"
)

func TestResponseToWire(t *testing.T) {
	testcases := []struct {
		desc     string
		response Response
		expected wire.Response
	}{
		{
			desc:     "unset status defaults to 200",
			response: Response{Body: Text("ok")},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "text/plain"},
				},
				Body: []byte("ok"),
			},
		},
		{
			desc:     "explicit status is kept",
			response: Response{Status: pointer.To(uint(201)), Body: Text("made")},
			expected: wire.Response{
				Status: 201,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "text/plain"},
				},
				Body: []byte("made"),
			},
		},
		{
			desc: "handler connection value is overwritten in place",
			response: Response{
				Headers: []wire.Field{
					{Name: "connection", Value: "keep-alive"},
					{Name: "X-Extra", Value: "v"},
				},
				Body: Text("hi"),
			},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "connection", Value: "close"},
					{Name: "X-Extra", Value: "v"},
					{Name: "Content-Type", Value: "text/plain"},
				},
				Body: []byte("hi"),
			},
		},
		{
			desc: "handler content-type is never replaced",
			response: Response{
				Headers: []wire.Field{
					{Name: "Content-Type", Value: "application/json"},
				},
				Body: Text(`{"a":1}`),
			},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Content-Type", Value: "application/json"},
					{Name: "Connection", Value: "close"},
				},
				Body: []byte(`{"a":1}`),
			},
		},
		{
			desc:     "html body defaults to text/html",
			response: Response{Body: HTML("<p>hi</p>")},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "text/html"},
				},
				Body: []byte("<p>hi</p>"),
			},
		},
		{
			desc:     "binary body stays out of the grammar",
			response: Response{Body: Binary{0x01, 0x02}},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "application/octet-stream"},
				},
				Body: nil,
			},
		},
		{
			desc:     "file body defaults to octet-stream",
			response: Response{Body: File{Path: "/tmp/x"}},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "application/octet-stream"},
				},
				Body: nil,
			},
		},
		{
			desc:     "file body with explicit mime",
			response: Response{Body: File{Path: "/tmp/x.png", MIME: "image/png"}},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "image/png"},
				},
				Body: nil,
			},
		},
		{
			desc:     "nil body acts like empty binary",
			response: Response{},
			expected: wire.Response{
				Status: 200,
				Headers: []wire.Field{
					{Name: "Connection", Value: "close"},
					{Name: "Content-Type", Value: "application/octet-stream"},
				},
				Body: nil,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.response.toWire())
		})
	}
}

func TestToWireDoesNotMutateHandlerHeaders(t *testing.T) {
	response := Response{
		Headers: []wire.Field{{Name: "Connection", Value: "keep-alive"}},
		Body:    Text("x"),
	}

	_ = response.toWire()

	assert.Equal(t, "keep-alive", response.Headers[0].Value)
}
