package docs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleUser struct {
	ID    int64   `json:"user_id"`
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Bio   *string `json:"bio"`
	Skip  string  `json:"-"`
}

type sampleList struct {
	Limit int `json:"limit" validate:"min=0,max=1000"`
}

func newSampleRegistry() *Registry {
	reg := NewRegistry("Sample API", "1.0.0", "test registry")
	reg.Add(Route{
		Method:      http.MethodPost,
		Path:        "/users",
		Summary:     "Create a user",
		Tag:         "users",
		RequestBody: sampleUser{},
		Responses: map[int]Response{
			http.StatusCreated:    {Description: "Created", Body: sampleUser{}},
			http.StatusBadRequest: {},
		},
	})
	reg.Add(Route{
		Method:  "get",
		Path:    "/users/{id:[0-9]+}",
		Summary: "Get a user",
		Params: []Param{
			{Name: "id", In: "path", Schema: openapi3.NewInt64Schema()},
		},
		Responses: map[int]Response{
			http.StatusOK: {Body: sampleUser{}},
		},
	})
	reg.Add(Route{
		Method: http.MethodGet,
		Path:   "/users",
		Responses: map[int]Response{
			http.StatusOK: {Body: []sampleUser{}},
		},
	})
	return reg
}

func TestRegistryAddReplacesDuplicates(t *testing.T) {
	reg := NewRegistry("t", "v", "")
	reg.Add(Route{Method: "GET", Path: "/", Summary: "first"})
	reg.Add(Route{Method: "get", Path: "/", Summary: "second"})

	routes := reg.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "second", routes[0].Summary)
}

func TestRegistryRoutesAreSorted(t *testing.T) {
	routes := newSampleRegistry().Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/users", routes[0].Path)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, http.MethodPost, routes[1].Method)
	assert.Equal(t, "/users/{id:[0-9]+}", routes[2].Path)
}

func TestOpenAPI(t *testing.T) {
	doc, err := newSampleRegistry().OpenAPI()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, OpenAPIVersion, doc.OpenAPI)
	assert.Equal(t, "Sample API", doc.Info.Title)

	byID := doc.Paths.Value("/users/{id}")
	require.NotNil(t, byID, "chi regex should be stripped from path")
	require.NotNil(t, byID.Get)
	require.Len(t, byID.Get.Parameters, 1)
	assert.True(t, byID.Get.Parameters[0].Value.Required, "path params are always required")

	post := doc.Paths.Value("/users").Post
	require.NotNil(t, post)
	require.NotNil(t, post.RequestBody)
	assert.Equal(t, "#/components/schemas/sampleUser",
		post.RequestBody.Value.Content.Get("application/json").Schema.Ref)
	assert.Equal(t, "Bad Request", *post.Responses.Status(http.StatusBadRequest).Value.Description)
	assert.Equal(t, "Created", *post.Responses.Status(http.StatusCreated).Value.Description)
	assert.Nil(t, post.Responses.Default(), "only registered statuses are documented")

	list := doc.Paths.Value("/users").Get
	listSchema := list.Responses.Status(http.StatusOK).Value.Content.Get("application/json").Schema.Value
	assert.True(t, listSchema.Type.Is("array"))
	require.NotNil(t, listSchema.Items)
	assert.Equal(t, "#/components/schemas/sampleUser", listSchema.Items.Ref)

	user := doc.Components.Schemas["sampleUser"].Value
	assert.True(t, user.Type.Is("object"))
	assert.ElementsMatch(t, []string{"name", "email"}, user.Required)
	assert.Equal(t, "email", user.Properties["email"].Value.Format)
	assert.Equal(t, "int64", user.Properties["user_id"].Value.Format)
	assert.True(t, user.Properties["bio"].Value.Nullable)
	assert.NotContains(t, user.Properties, "Skip")
	assert.NotContains(t, user.Properties, "-")
}

func TestSchemaForBounds(t *testing.T) {
	schemas := openapi3.Schemas{}
	_, err := schemaFor(schemas, sampleList{})
	require.NoError(t, err)

	limit := schemas["sampleList"].Value.Properties["limit"].Value
	require.NotNil(t, limit.Min)
	require.NotNil(t, limit.Max)
	assert.Equal(t, float64(0), *limit.Min)
	assert.Equal(t, float64(1000), *limit.Max)
}

func TestSchemaForScalars(t *testing.T) {
	schemas := openapi3.Schemas{}
	ref, err := schemaFor(schemas, "")
	require.NoError(t, err)
	assert.Empty(t, ref.Ref)
	assert.True(t, ref.Value.Type.Is("string"))
	assert.Empty(t, schemas, "scalars are not stored as components")
}

func TestSpecHandler(t *testing.T) {
	w := httptest.NewRecorder()
	newSampleRegistry().SpecHandler()(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, OpenAPIVersion, raw["openapi"])
}

func TestUIHandler(t *testing.T) {
	w := httptest.NewRecorder()
	UIHandler("Sample API", "/swagger/doc.json")(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Sample API</title>")
	assert.Contains(t, w.Body.String(), "doc.json")
	assert.Contains(t, w.Body.String(), "swagger-ui-dist@"+SwaggerUIVersion)
}

func TestToOpenAPIPath(t *testing.T) {
	assert.Equal(t, "/users/{id}", toOpenAPIPath("/users/{id:[0-9]+}"))
	assert.Equal(t, "/users/{id}", toOpenAPIPath("/users/{id}"))
	assert.Equal(t, "/", toOpenAPIPath("/"))
}
