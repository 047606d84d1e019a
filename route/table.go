package route

import "minihttp/wire"

// Route is one dispatch-table entry. H is the application's handler
// representation; the router never calls it, only selects it.
type Route[H any] struct {
	Method  wire.Method
	Pattern Pattern
	Handler H
}

// Table is an ordered sequence of routes. It is built once at server
// start and read-only afterwards; order determines match priority.
type Table[H any] []Route[H]

// Match scans the table in order and returns the handler of the first
// entry whose method matches and whose pattern structurally matches
// path. First match wins regardless of specificity: an earlier
// whole-path variable shadows a later literal route. No entry matching
// reports ok=false; the caller decides the not-found behavior.
func (t Table[H]) Match(method wire.Method, path string) (handler H, params Params, ok bool) {
	for _, r := range t {
		if r.Method != method {
			continue
		}

		if ps, matched := r.Pattern.Match(path); matched {
			return r.Handler, ps, true
		}
	}

	var zero H
	return zero, nil, false
}
