package routing

import "net/http"

// HandlerWrapper has Wrap method which acts as a middleware by wrapping an http.Handler
// prepending and appending some additional logic around the handler's ServeHTTP(w,r)
// and then returns a new http.Handler which can wrap another or can be wrapped by another
type HandlerWrapper interface {
	Wrap(http.Handler) http.Handler
}

// WrapperFunc adapts a plain function to the HandlerWrapper interface.
type WrapperFunc func(http.Handler) http.Handler

func (f WrapperFunc) Wrap(h http.Handler) http.Handler { return f(h) }
