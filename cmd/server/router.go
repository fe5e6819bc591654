package main

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/users-api/internal/api"
	"github.com/phrazzld/users-api/internal/api/docs"
	apiMiddleware "github.com/phrazzld/users-api/internal/api/middleware"
	"github.com/phrazzld/users-api/internal/api/shared"
)

// API metadata shown in the generated documentation.
const (
	apiTitle       = "users-api"
	apiVersion     = "1.0.0"
	apiDescription = "CRUD-style endpoints over a users table stored in SQLite."

	specPath = "/swagger/doc.json"
)

// documentedRouter registers handlers on a chi router and records their
// documentation in a registry at the same time.
type documentedRouter struct {
	chi.Router
	registry *docs.Registry
}

func (d documentedRouter) handle(route docs.Route, h http.Handler) {
	d.Method(route.Method, route.Path, h)
	d.registry.Add(route)
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	registry := docs.NewRegistry(apiTitle, apiVersion, apiDescription)
	dr := documentedRouter{Router: r, registry: registry}

	userHandler := api.NewUserHandler(app.userService, app.config.Seed.Count, app.logger)

	errorResponses := func(statuses ...int) map[int]docs.Response {
		out := make(map[int]docs.Response, len(statuses))
		for _, s := range statuses {
			out[s] = docs.Response{Description: http.StatusText(s), Body: shared.ErrorResponse{}}
		}
		return out
	}
	withSuccess := func(status int, resp docs.Response, errs map[int]docs.Response) map[int]docs.Response {
		errs[status] = resp
		return errs
	}

	dr.handle(docs.Route{
		Method:  http.MethodGet,
		Path:    "/",
		Summary: "Greeting",
		Tag:     "meta",
		Responses: map[int]docs.Response{
			http.StatusOK: {Description: "Fixed greeting", ContentType: "text/plain", Body: ""},
		},
	}, http.HandlerFunc(api.Root))

	dr.handle(docs.Route{
		Method:  http.MethodGet,
		Path:    "/health",
		Summary: "Liveness check",
		Tag:     "meta",
		Responses: map[int]docs.Response{
			http.StatusOK: {Description: "Service is up", ContentType: "text/plain", Body: ""},
		},
	}, http.HandlerFunc(api.Health))

	dr.handle(docs.Route{
		Method:      http.MethodPost,
		Path:        "/users",
		Summary:     "Create a user",
		Description: "Stores a new user. The user_id is assigned by the database.",
		Tag:         "users",
		RequestBody: api.CreateUserRequest{},
		Responses: withSuccess(http.StatusCreated,
			docs.Response{Description: "User created", Body: api.UserResponse{}},
			errorResponses(http.StatusBadRequest, http.StatusInternalServerError)),
	}, http.HandlerFunc(userHandler.CreateUser))

	dr.handle(docs.Route{
		Method:  http.MethodGet,
		Path:    "/users",
		Summary: "List users",
		Description: "Returns at most limit users ordered by first name, descending. " +
			"limit defaults to 10.",
		Tag: "users",
		Params: []docs.Param{{
			Name:        "limit",
			In:          "query",
			Description: "Maximum number of users to return",
			Schema:      listLimitSchema(),
		}},
		Responses: withSuccess(http.StatusOK,
			docs.Response{Description: "Users", Body: []api.UserResponse{}},
			errorResponses(http.StatusBadRequest, http.StatusInternalServerError)),
	}, http.HandlerFunc(userHandler.ListUsers))

	dr.handle(docs.Route{
		Method:  http.MethodGet,
		Path:    "/users/{id}",
		Summary: "Get a user by id",
		Tag:     "users",
		Params: []docs.Param{{
			Name:        "id",
			In:          "path",
			Description: "The user_id of the user",
			Schema:      openapi3.NewInt64Schema().WithMin(1),
		}},
		Responses: withSuccess(http.StatusOK,
			docs.Response{Description: "The user", Body: api.UserResponse{}},
			errorResponses(http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError)),
	}, http.HandlerFunc(userHandler.GetUser))

	if app.config.Seed.Enabled {
		limiter := apiMiddleware.NewRateLimiter(apiMiddleware.RateLimiterConfig{
			RatePerMinute: app.config.Seed.RatePerMinute,
		})

		dr.handle(docs.Route{
			Method:  http.MethodPost,
			Path:    "/seed",
			Summary: "Seed the database",
			Description: "Development only. Inserts generated users one at a time. " +
				"Not idempotent: every call appends a new batch.",
			Tag: "development",
			Responses: withSuccess(http.StatusCreated,
				docs.Response{Description: "Seeding finished", Body: api.SeedResponse{}},
				errorResponses(http.StatusTooManyRequests, http.StatusInternalServerError)),
		}, limiter.Middleware(http.HandlerFunc(userHandler.Seed)))
	}

	r.Get(specPath, registry.SpecHandler())
	r.Get("/swagger", docs.UIHandler(apiTitle, specPath))

	return r
}

func listLimitSchema() *openapi3.Schema {
	return openapi3.NewIntegerSchema().
		WithMin(0).
		WithMax(api.MaxListLimit).
		WithDefault(api.DefaultListLimit)
}
