package httpx

import "net/http"

// Middleware wraps an http.Handler with extra behaviour.
type Middleware = func(http.Handler) http.Handler

// Chain composes middlewares around a handler. The first middleware in the
// list becomes the outermost wrapper, so it sees the request first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
