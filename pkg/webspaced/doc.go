// Package webspaced is a client for the webspaced REST API.
//
// The daemon listens on a Unix domain socket (by default
// /run/webspaced/server.sock) and speaks JSON over HTTP/1.1. Every request
// opens a fresh connection to the socket; the client holds no state beyond
// the socket path and an optional impersonated user, so one Client is
// normally built per CLI invocation.
//
// All failures are reported as *Error:
//
//	c := webspaced.New(webspaced.DefaultSocketPath, webspaced.WithUser("alice"))
//	if err := c.Boot(ctx); err != nil {
//	    var wsErr *webspaced.Error
//	    if errors.As(err, &wsErr) && wsErr.StatusCode == http.StatusConflict {
//	        // already running
//	    }
//	}
//
// Responses with status >= 400 carry the server's JSON "message" when one is
// present, and a message derived from the HTTP status line otherwise.
package webspaced
