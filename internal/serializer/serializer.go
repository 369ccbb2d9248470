package serializer

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/query"
)

// ErrNilInput is returned when a serializer is handed nothing to serialize.
var ErrNilInput = errors.New("serializer: nil input")

// Serializer renders rows of type T as JSON:API resources.
type Serializer[T any] struct {
	resourceType string
	keys         map[string]struct{}
	collection   string
	id           func(*T) int64
	attributes   func(*T) (map[string]any, error)
}

// Config describes one resource for New.
type Config[T any] struct {
	// Definition is the schema definition of the resource object.
	Definition string
	// Path is the collection path relative to the schema basePath.
	Path string
	// ID extracts the row id.
	ID func(*T) int64
	// Attributes builds the attribute map of a row. Keys the schema does
	// not declare are dropped.
	Attributes func(*T) (map[string]any, error)
}

// New builds a serializer whose links start at baseURL joined with the
// schema basePath.
func New[T any](schema *openapi.Schema, baseURL string, cfg Config[T]) (*Serializer[T], error) {
	if schema == nil {
		return nil, ErrNilInput
	}
	resourceType, err := schema.ResourceType(cfg.Definition)
	if err != nil {
		return nil, err
	}
	keys, err := schema.AttributeKeys(cfg.Definition)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}

	return &Serializer[T]{
		resourceType: resourceType,
		keys:         allowed,
		collection:   strings.TrimRight(baseURL, "/") + schema.BasePath + cfg.Path,
		id:           cfg.ID,
		attributes:   cfg.Attributes,
	}, nil
}

// Type returns the JSON:API type of the resource.
func (s *Serializer[T]) Type() string {
	return s.resourceType
}

// One renders a single resource document.
func (s *Serializer[T]) One(row *T) (*jsonapi.Document, error) {
	if row == nil {
		return nil, ErrNilInput
	}
	res, err := s.resource(row)
	if err != nil {
		return nil, err
	}
	return &jsonapi.Document{
		Links: &jsonapi.Links{Self: res.Links.Self},
		Data:  &res,
	}, nil
}

// Many paginates rows according to q and renders the requested page with
// pagination links and meta.
func (s *Serializer[T]) Many(rows []T, q *query.Query) (*jsonapi.Document, error) {
	if rows == nil || q == nil {
		return nil, ErrNilInput
	}

	page := jsonapi.Paginate(rows, q.Page)
	data := make([]jsonapi.Resource, 0, len(page.Rows))
	for i := range page.Rows {
		res, err := s.resource(&page.Rows[i])
		if err != nil {
			return nil, err
		}
		data = append(data, res)
	}

	values := q.Params.Values()
	links := &jsonapi.Links{
		Self:  s.link(values, nil),
		First: s.link(values, &jsonapi.Page{Size: page.Page.Size, Number: 1}),
		Last:  s.link(values, &jsonapi.Page{Size: page.Page.Size, Number: page.TotalPages}),
	}
	if page.HasPrev() {
		// A page past the end links back to the last real page.
		prev := min(page.Page.Number-1, page.TotalPages)
		links.Prev = s.link(values, &jsonapi.Page{Size: page.Page.Size, Number: prev})
	}
	if page.HasNext() {
		links.Next = s.link(values, &jsonapi.Page{Size: page.Page.Size, Number: page.Page.Number + 1})
	}

	return &jsonapi.Document{
		Links: links,
		Meta:  page.Meta(),
		Data:  data,
	}, nil
}

func (s *Serializer[T]) resource(row *T) (jsonapi.Resource, error) {
	attrs, err := s.attributes(row)
	if err != nil {
		return jsonapi.Resource{}, fmt.Errorf("failed to build %s attributes: %w", s.resourceType, err)
	}
	for k := range attrs {
		if _, ok := s.keys[k]; !ok {
			delete(attrs, k)
		}
	}

	id := strconv.FormatInt(s.id(row), 10)
	return jsonapi.Resource{
		ID:         id,
		Type:       s.resourceType,
		Attributes: attrs,
		Links:      &jsonapi.Links{Self: s.collection + "/" + id},
	}, nil
}

func (s *Serializer[T]) link(values url.Values, page *jsonapi.Page) string {
	v := url.Values{}
	for k, vs := range values {
		v[k] = append([]string(nil), vs...)
	}
	if page != nil {
		v.Set(jsonapi.PageNumberParam, strconv.Itoa(page.Number))
		v.Set(jsonapi.PageSizeParam, strconv.Itoa(page.Size))
	}
	if len(v) == 0 {
		return s.collection
	}
	return s.collection + "?" + v.Encode()
}

// ParseScore converts a NUMERIC column in text form to a number.
func ParseScore(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", text, err)
	}
	return f, nil
}
