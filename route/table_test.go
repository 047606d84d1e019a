package route

import (
	"testing"

	"minihttp/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMatch(t *testing.T) {
	table := Table[string]{
		{Method: wire.MethodGet, Pattern: MustParse("/"), Handler: "root"},
		{Method: wire.MethodGet, Pattern: MustParse("/user/:name"), Handler: "user"},
		{Method: wire.MethodPost, Pattern: MustParse("/user/:name"), Handler: "create-user"},
		{Method: wire.MethodGet, Pattern: MustParse("*rest"), Handler: "catch-all"},
	}

	testcases := []struct {
		desc    string
		method  wire.Method
		path    string
		handler string
		params  Params
		ok      bool
	}{
		{
			desc:    "root",
			method:  wire.MethodGet,
			path:    "/",
			handler: "root",
			ok:      true,
		},
		{
			desc:    "parameterized",
			method:  wire.MethodGet,
			path:    "/user/alice",
			handler: "user",
			params:  Params{{Name: "name", Value: "alice"}},
			ok:      true,
		},
		{
			desc:    "method selects between identical patterns",
			method:  wire.MethodPost,
			path:    "/user/alice",
			handler: "create-user",
			params:  Params{{Name: "name", Value: "alice"}},
			ok:      true,
		},
		{
			desc:    "catch-all picks up the rest",
			method:  wire.MethodGet,
			path:    "/anything/else",
			handler: "catch-all",
			params:  Params{{Name: "rest", Value: "/anything/else"}},
			ok:      true,
		},
		{
			desc:   "no entry for the method",
			method: wire.MethodDelete,
			path:   "/",
			ok:     false,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			h, params, ok := table.Match(tc.method, tc.path)
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			assert.Equal(t, tc.handler, h)
			assert.Equal(t, tc.params, params)
		})
	}
}

// An earlier route with a looser shape wins over a later, more
// specific one; order in the table is the only priority.
func TestTableMatchFirstEntryShadows(t *testing.T) {
	table := Table[string]{
		{Method: wire.MethodGet, Pattern: MustParse("/user/:name"), Handler: "loose"},
		{Method: wire.MethodGet, Pattern: MustParse("/user/admin"), Handler: "specific"},
	}

	h, _, ok := table.Match(wire.MethodGet, "/user/admin")
	require.True(t, ok)
	assert.Equal(t, "loose", h)
}

func TestTableMatchEmpty(t *testing.T) {
	var table Table[string]

	_, _, ok := table.Match(wire.MethodGet, "/")
	assert.False(t, ok)
}
