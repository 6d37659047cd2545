// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, page and API handlers, and middleware. Cross
// cutting concerns such as session authentication, CSRF protection, rate
// limiting, request tracing, access logging, and security headers are all
// handled in this package before requests are delegated to the service
// layer.
package http
