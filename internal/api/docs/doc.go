// Package docs collects documentation metadata for HTTP routes and renders
// it as an OpenAPI 3.0 document plus a Swagger UI page. Registering a route
// here has no effect on how requests are handled.
package docs
