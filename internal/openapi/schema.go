package openapi

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var embedded []byte

const (
	parameterRefPrefix = "#/parameters/"
	pageSizeKey        = "pageSize"
	pageNumberKey      = "pageNumber"
)

// ErrInvalidSchema is returned when the document cannot be parsed or refers
// to something it does not define.
var ErrInvalidSchema = errors.New("invalid openapi schema")

// Items describes the elements of an array parameter.
type Items struct {
	Type   string `yaml:"type"`
	Format string `yaml:"format"`
}

// Parameter is an operation or shared parameter. Local $ref entries are
// replaced by the referenced definition when the schema is loaded.
type Parameter struct {
	Ref              string   `yaml:"$ref"`
	Name             string   `yaml:"name"`
	In               string   `yaml:"in"`
	Type             string   `yaml:"type"`
	Format           string   `yaml:"format"`
	Description      string   `yaml:"description"`
	Required         bool     `yaml:"required"`
	Default          any      `yaml:"default"`
	Minimum          *float64 `yaml:"minimum"`
	Maximum          *float64 `yaml:"maximum"`
	Items            *Items   `yaml:"items"`
	CollectionFormat string   `yaml:"collectionFormat"`
}

// IsArray reports whether the parameter carries a list of values.
func (p Parameter) IsArray() bool {
	return p.Type == "array"
}

// ElementType returns the declared type of the parameter's values.
func (p Parameter) ElementType() (typ, format string) {
	if p.IsArray() && p.Items != nil {
		return p.Items.Type, p.Items.Format
	}
	return p.Type, p.Format
}

// Operation is a single HTTP method on a path.
type Operation struct {
	OperationID string      `yaml:"operationId"`
	Summary     string      `yaml:"summary"`
	Tags        []string    `yaml:"tags"`
	Parameters  []Parameter `yaml:"parameters"`
}

// PathItem groups the operations available on a path.
type PathItem struct {
	Parameters []Parameter `yaml:"parameters"`
	Get        *Operation  `yaml:"get"`
	Post       *Operation  `yaml:"post"`
	Patch      *Operation  `yaml:"patch"`
	Delete     *Operation  `yaml:"delete"`
}

func (p PathItem) operation(method string) *Operation {
	switch strings.ToUpper(method) {
	case "GET":
		return p.Get
	case "POST":
		return p.Post
	case "PATCH":
		return p.Patch
	case "DELETE":
		return p.Delete
	default:
		return nil
	}
}

// Property is a schema object inside definitions.
type Property struct {
	Ref        string              `yaml:"$ref"`
	Type       string              `yaml:"type"`
	Format     string              `yaml:"format"`
	Enum       []string            `yaml:"enum"`
	Minimum    *float64            `yaml:"minimum"`
	Maximum    *float64            `yaml:"maximum"`
	Nullable   bool                `yaml:"x-nullable"`
	Required   []string            `yaml:"required"`
	Properties map[string]Property `yaml:"properties"`
	Items      *Property           `yaml:"items"`
}

// Schema is a parsed Swagger 2.0 document.
type Schema struct {
	Swagger     string               `yaml:"swagger"`
	BasePath    string               `yaml:"basePath"`
	Paths       map[string]PathItem  `yaml:"paths"`
	Parameters  map[string]Parameter `yaml:"parameters"`
	Definitions map[string]Property  `yaml:"definitions"`

	raw []byte
}

// Load parses the embedded document.
func Load() (*Schema, error) {
	return Parse(embedded)
}

// LoadFile parses the document at path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read openapi document: %w", err)
	}
	return Parse(data)
}

// Parse parses a Swagger 2.0 document and resolves local parameter references.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if s.Swagger != "2.0" {
		return nil, fmt.Errorf("%w: unsupported swagger version %q", ErrInvalidSchema, s.Swagger)
	}
	if s.BasePath == "" {
		return nil, fmt.Errorf("%w: basePath is required", ErrInvalidSchema)
	}

	for path, item := range s.Paths {
		var err error
		if item.Parameters, err = s.resolve(item.Parameters); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, path, err)
		}
		for _, op := range []*Operation{item.Get, item.Post, item.Patch, item.Delete} {
			if op == nil {
				continue
			}
			if op.Parameters, err = s.resolve(op.Parameters); err != nil {
				return nil, fmt.Errorf("%w: %s %s: %v", ErrInvalidSchema, path, op.OperationID, err)
			}
		}
		s.Paths[path] = item
	}

	s.raw = data
	return &s, nil
}

func (s *Schema) resolve(params []Parameter) ([]Parameter, error) {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if p.Ref == "" {
			out = append(out, p)
			continue
		}
		key, ok := strings.CutPrefix(p.Ref, parameterRefPrefix)
		if !ok {
			return nil, fmt.Errorf("unsupported reference %q", p.Ref)
		}
		target, ok := s.Parameters[key]
		if !ok {
			return nil, fmt.Errorf("unresolved reference %q", p.Ref)
		}
		out = append(out, target)
	}
	return out, nil
}

// Raw returns the document as it was loaded.
func (s *Schema) Raw() []byte {
	return s.raw
}

// QueryParams returns the query parameters declared for method on path,
// including those declared at path level. path is relative to basePath.
func (s *Schema) QueryParams(path, method string) []Parameter {
	item, ok := s.Paths[path]
	if !ok {
		return nil
	}
	var out []Parameter
	for _, p := range item.Parameters {
		if p.In == "query" {
			out = append(out, p)
		}
	}
	if op := item.operation(method); op != nil {
		for _, p := range op.Parameters {
			if p.In == "query" {
				out = append(out, p)
			}
		}
	}
	return out
}

// ResourceType returns the JSON:API type of a resource definition, taken
// from the first value of its type enum.
func (s *Schema) ResourceType(definition string) (string, error) {
	def, ok := s.Definitions[definition]
	if !ok {
		return "", fmt.Errorf("%w: unknown definition %q", ErrInvalidSchema, definition)
	}
	typ, ok := def.Properties["type"]
	if !ok || len(typ.Enum) == 0 {
		return "", fmt.Errorf("%w: %s has no type enum", ErrInvalidSchema, definition)
	}
	return typ.Enum[0], nil
}

// AttributeKeys returns the sorted attribute names of a resource definition.
func (s *Schema) AttributeKeys(definition string) ([]string, error) {
	attrs, err := s.attributes(definition)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(attrs.Properties))
	for k := range attrs.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// AttributeBounds returns the declared minimum and maximum of a numeric
// attribute. ok is false unless both are declared.
func (s *Schema) AttributeBounds(definition, attribute string) (lo, hi float64, ok bool) {
	attrs, err := s.attributes(definition)
	if err != nil {
		return 0, 0, false
	}
	prop, found := attrs.Properties[attribute]
	if !found || prop.Minimum == nil || prop.Maximum == nil {
		return 0, 0, false
	}
	return *prop.Minimum, *prop.Maximum, true
}

func (s *Schema) attributes(definition string) (Property, error) {
	def, ok := s.Definitions[definition]
	if !ok {
		return Property{}, fmt.Errorf("%w: unknown definition %q", ErrInvalidSchema, definition)
	}
	attrs, ok := def.Properties["attributes"]
	if !ok {
		return Property{}, fmt.Errorf("%w: %s has no attributes", ErrInvalidSchema, definition)
	}
	return attrs, nil
}

// PageDefaults returns the defaults and maximum declared on the shared
// pageSize and pageNumber parameters. Missing values fall back to a page
// size of 25, page number 1 and no maximum.
func (s *Schema) PageDefaults() jsonapi.PageDefaults {
	d := jsonapi.PageDefaults{Size: 25, Number: 1}
	if p, ok := s.Parameters[pageSizeKey]; ok {
		if v, ok := intValue(p.Default); ok {
			d.Size = v
		}
		if p.Maximum != nil {
			d.MaxSize = int(*p.Maximum)
		}
	}
	if p, ok := s.Parameters[pageNumberKey]; ok {
		if v, ok := intValue(p.Default); ok {
			d.Number = v
		}
	}
	return d
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
