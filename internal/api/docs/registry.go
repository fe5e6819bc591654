package docs

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/phrazzld/users-api/internal/platform/logger"
)

// Param documents a path or query parameter.
type Param struct {
	Name        string
	In          string // "path" or "query"
	Description string
	Required    bool
	Schema      *openapi3.Schema
}

// Response documents one possible response of a route. Body is a sample
// value whose type is reflected into a schema; nil means no JSON body.
type Response struct {
	Description string
	ContentType string
	Body        any
}

// Route is the documentation attached to a single method and path.
// RequestBody is a sample value of the JSON request body, if any.
type Route struct {
	Method      string
	Path        string
	Summary     string
	Description string
	Tag         string
	Params      []Param
	RequestBody any
	Responses   map[int]Response
}

// Registry holds the documented routes of the service.
type Registry struct {
	mu          sync.RWMutex
	title       string
	version     string
	description string
	routes      []Route
}

// NewRegistry returns an empty registry for an API with the given title and version.
func NewRegistry(title, version, description string) *Registry {
	return &Registry{
		title:       title,
		version:     version,
		description: description,
	}
}

// Add records documentation for a route. A later entry with the same method
// and path replaces the earlier one.
func (r *Registry) Add(route Route) {
	route.Method = strings.ToUpper(route.Method)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.routes {
		if existing.Method == route.Method && existing.Path == route.Path {
			r.routes[i] = route
			return
		}
	}
	r.routes = append(r.routes, route)
}

// Routes returns the documented routes sorted by path, then method.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	r.mu.RUnlock()

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// SpecHandler serves the OpenAPI document as JSON.
func (r *Registry) SpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		doc, err := r.OpenAPI()
		if err != nil {
			logger.FromContextOrDefault(req.Context(), slog.Default()).
				Error("failed to build OpenAPI document", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writeJSON(w, req, doc)
	}
}
