package swaggerkit

import (
	"encoding/json"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	phttp "toxmanager/internal/platform/net/http"
)

// Info describes the API in the document header. Routes matching a Public
// pattern (path.Match syntax) are documented without bearer security
type Info struct {
	Title   string
	Version string
	Base    string
	Public  []string
}

// SpecMutator lets callers adjust the document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

func serveDocJSON(r phttp.Router, info Info) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		routes, ok := r.Mux().(chi.Routes)
		if !ok {
			http.Error(w, "router cannot be walked", http.StatusInternalServerError)
			return
		}
		spec, err := Build(routes, info)
		if err != nil {
			http.Error(w, "spec build error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// Build walks routes and returns an OpenAPI 3.0.3 document. Only routes under
// info.Base are documented, paths are made relative to it
func Build(routes chi.Routes, info Info) (map[string]any, error) {
	base := strings.TrimSuffix(info.Base, "/")
	paths := map[string]any{}
	tags := map[string]bool{}

	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if base != "" && !strings.HasPrefix(route, base+"/") {
			return nil
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(route, base), "/*")
		if len(rel) > 1 {
			rel = strings.TrimSuffix(rel, "/")
		}
		tag := firstSegment(rel)
		tags[tag] = true

		node, _ := paths[rel].(map[string]any)
		if node == nil {
			node = map[string]any{}
			paths[rel] = node
		}
		op := map[string]any{
			"tags":        []any{tag},
			"operationId": operationID(method, rel),
			"responses":   defaultResponses(),
		}
		if params := pathParams(rel); len(params) > 0 {
			op["parameters"] = params
		}
		if !isPublic(rel, info.Public) {
			op["security"] = []any{map[string]any{"bearerAuth": []any{}}}
		}
		node[strings.ToLower(method)] = op
		return nil
	})
	if err != nil {
		return nil, err
	}

	tagList := make([]string, 0, len(tags))
	for t := range tags {
		tagList = append(tagList, t)
	}
	sort.Strings(tagList)
	tagNodes := make([]any, 0, len(tagList))
	for _, t := range tagList {
		tagNodes = append(tagNodes, map[string]any{"name": t})
	}

	spec := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": info.Title, "version": info.Version},
		"servers": []any{map[string]any{"url": base}},
		"tags":    tagNodes,
		"paths":   paths,
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
			},
			"schemas": map[string]any{"Envelope": envelopeSchema()},
		},
	}
	for _, m := range mutators {
		m(spec)
	}
	return spec, nil
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}

func operationID(method, p string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, seg := range strings.Split(p, "/") {
		seg = strings.Trim(seg, "{}")
		for _, part := range strings.FieldsFunc(seg, func(r rune) bool { return r == '-' || r == '_' }) {
			b.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return b.String()
}

func pathParams(p string) []any {
	var out []any
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			out = append(out, map[string]any{
				"name":     strings.Trim(seg, "{}"),
				"in":       "path",
				"required": true,
				"schema":   map[string]any{"type": "string"},
			})
		}
	}
	return out
}

func isPublic(p string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, p); ok {
			return true
		}
	}
	return false
}

func envelopeSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Standard response envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"field":       map[string]any{"type": "string"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
			"data":        map[string]any{},
		},
		"required": []any{"status_code", "status"},
	}
}

func defaultResponses() map[string]any {
	ref := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": "#/components/schemas/Envelope"},
				},
			},
		}
	}
	return map[string]any{
		"200": ref("OK"),
		"400": ref("Bad Request"),
		"500": ref("Internal Server Error"),
	}
}
