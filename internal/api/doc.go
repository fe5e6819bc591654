// Package api holds the HTTP handlers of the users service. Handlers decode
// and validate requests, call the user service, and translate its errors
// into status codes and safe messages. Routing lives in cmd/server.
package api
