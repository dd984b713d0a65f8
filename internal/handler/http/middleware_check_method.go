package http

import "net/http"

// hideMethodNotAllowed is registered as the router's MethodNotAllowed
// handler. Chi invokes it only when a request path matched a registered
// route but the HTTP method did not, and answers 405 by default; this
// service answers 404 instead so that an unsupported method does not reveal
// the route's existence. No further routing decision is needed at this
// point: a supported method never reaches the MethodNotAllowed handler.
func hideMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
