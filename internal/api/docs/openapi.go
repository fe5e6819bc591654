package docs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/phrazzld/users-api/internal/platform/logger"
)

// OpenAPIVersion is the version of the OpenAPI format produced by OpenAPI.
const OpenAPIVersion = "3.0.3"

const componentsPrefix = "#/components/schemas/"

// OpenAPI builds the document for every registered route.
func (r *Registry) OpenAPI() (*openapi3.T, error) {
	r.mu.RLock()
	info := &openapi3.Info{Title: r.title, Version: r.version, Description: r.description}
	r.mu.RUnlock()

	doc := &openapi3.T{
		OpenAPI:    OpenAPIVersion,
		Info:       info,
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: make(openapi3.Schemas)},
	}

	for _, route := range r.Routes() {
		op := openapi3.NewOperation()
		op.Summary = route.Summary
		op.Description = route.Description
		if route.Tag != "" {
			op.Tags = []string{route.Tag}
		}

		for _, p := range route.Params {
			param := &openapi3.Parameter{
				Name:        p.Name,
				In:          p.In,
				Description: p.Description,
				Required:    p.Required || p.In == openapi3.ParameterInPath,
			}
			if p.Schema != nil {
				param.Schema = p.Schema.NewRef()
			}
			op.AddParameter(param)
		}

		if route.RequestBody != nil {
			schema, err := schemaFor(doc.Components.Schemas, route.RequestBody)
			if err != nil {
				return nil, fmt.Errorf("request body of %s %s: %w", route.Method, route.Path, err)
			}
			op.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(schema),
			}
		}

		op.Responses = openapi3.NewResponsesWithCapacity(len(route.Responses))
		for status, resp := range route.Responses {
			description := resp.Description
			if description == "" {
				description = http.StatusText(status)
			}
			out := openapi3.NewResponse().WithDescription(description)
			if resp.Body != nil {
				schema, err := schemaFor(doc.Components.Schemas, resp.Body)
				if err != nil {
					return nil, fmt.Errorf("%d response of %s %s: %w", status, route.Method, route.Path, err)
				}
				contentType := resp.ContentType
				if contentType == "" {
					contentType = "application/json"
				}
				out.WithContent(openapi3.NewContentWithSchemaRef(schema, []string{contentType}))
			}
			op.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{Value: out})
		}

		doc.AddOperation(toOpenAPIPath(route.Path), route.Method, op)
	}

	return doc, nil
}

// toOpenAPIPath converts chi style patterns ({id:[0-9]+}) into OpenAPI
// templates ({id}).
func toOpenAPIPath(pattern string) string {
	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if name, _, found := strings.Cut(seg[1:len(seg)-1], ":"); found {
				segments[i] = "{" + name + "}"
			}
		}
	}
	return strings.Join(segments, "/")
}

// schemaFor returns the schema of the sample value v. Named struct types,
// and slices of them, are stored in schemas and referenced.
func schemaFor(schemas openapi3.Schemas, v any) (*openapi3.SchemaRef, error) {
	t := reflect.TypeOf(v)
	switch {
	case isComponent(t):
		return componentRef(schemas, t)
	case (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) && isComponent(t.Elem()):
		items, err := componentRef(schemas, t.Elem())
		if err != nil {
			return nil, err
		}
		return &openapi3.SchemaRef{Value: &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: items,
		}}, nil
	default:
		return openapi3gen.NewSchemaRefForValue(v, nil, openapi3gen.SchemaCustomizer(validateTags))
	}
}

func isComponent(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Name() != "" && t != reflect.TypeOf(time.Time{})
}

func componentRef(schemas openapi3.Schemas, t reflect.Type) (*openapi3.SchemaRef, error) {
	name := t.Name()
	existing, ok := schemas[name]
	if !ok {
		generated, err := openapi3gen.NewSchemaRefForValue(
			reflect.Zero(t).Interface(), nil, openapi3gen.SchemaCustomizer(validateTags))
		if err != nil {
			return nil, fmt.Errorf("generate schema for %s: %w", name, err)
		}
		schemas[name] = generated
		existing = generated
	}
	return openapi3.NewSchemaRef(componentsPrefix+name, existing.Value), nil
}

// validateTags copies the validator rules of a struct field onto its
// schema. Structs collect the json names of their required fields.
func validateTags(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if t.Kind() == reflect.Struct {
		schema.Required = requiredFields(t)
	}

	for _, rule := range strings.Split(tag.Get("validate"), ",") {
		key, value, _ := strings.Cut(rule, "=")
		switch key {
		case "email":
			schema.Format = "email"
		case "min", "max":
			if t.Kind() == reflect.String {
				continue
			}
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			if key == "min" {
				schema.WithMin(f)
			} else {
				schema.WithMax(f)
			}
		}
	}
	return nil
}

func requiredFields(t reflect.Type) []string {
	var required []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
			if rule == "required" {
				required = append(required, name)
				break
			}
		}
	}
	return required
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode OpenAPI document", "error", err)
	}
}
