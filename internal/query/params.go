package query

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/openapi"
)

// Params holds the declared, non-pagination query parameters of a request.
// Scalar parameters are bound by name; list parameters are kept apart so the
// predicate builder can expand them into one bind per element.
type Params struct {
	scalars map[string]string
	lists   map[string][]string
}

// NewParams builds Params directly. It is mostly useful in tests; requests
// go through Filter.
func NewParams(scalars map[string]string, lists map[string][]string) Params {
	p := Params{scalars: map[string]string{}, lists: map[string][]string{}}
	for k, v := range scalars {
		if v != "" {
			p.scalars[k] = v
		}
	}
	for k, v := range lists {
		if len(v) > 0 {
			p.lists[k] = append([]string(nil), v...)
		}
	}
	return p
}

// Get returns a scalar parameter.
func (p Params) Get(name string) (string, bool) {
	v, ok := p.scalars[name]
	return v, ok
}

// List returns the elements of a list parameter.
func (p Params) List(name string) []string {
	return p.lists[name]
}

// Len returns the number of parameters present.
func (p Params) Len() int {
	return len(p.scalars) + len(p.lists)
}

// Values renders the parameters back into a query string form, with list
// parameters repeated once per element.
func (p Params) Values() url.Values {
	v := url.Values{}
	for k, s := range p.scalars {
		v.Set(k, s)
	}
	for k, l := range p.lists {
		v[k] = append([]string(nil), l...)
	}
	return v
}

// Filter drops pagination keys, undeclared keys and empty values from raw.
// Array parameters accept repeated keys, comma-separated values, or both.
// No value is coerced.
func Filter(raw url.Values, declared []openapi.Parameter) Params {
	p := Params{scalars: map[string]string{}, lists: map[string][]string{}}
	for _, param := range declared {
		if param.In != "query" || isPageParam(param.Name) {
			continue
		}
		values, ok := raw[param.Name]
		if !ok {
			continue
		}
		if param.IsArray() {
			var items []string
			for _, v := range values {
				for _, item := range strings.Split(v, ",") {
					if item = strings.TrimSpace(item); item != "" {
						items = append(items, item)
					}
				}
			}
			if len(items) > 0 {
				p.lists[param.Name] = items
			}
			continue
		}
		if len(values) > 0 && values[0] != "" {
			p.scalars[param.Name] = values[0]
		}
	}
	return p
}

func isPageParam(name string) bool {
	return name == jsonapi.PageSizeParam || name == jsonapi.PageNumberParam
}

// Validate checks every present parameter against its declared type, format
// and numeric bounds, and returns one detail per problem.
func Validate(p Params, declared []openapi.Parameter) []string {
	var details []string
	for _, param := range declared {
		typ, format := param.ElementType()
		if param.IsArray() {
			for _, item := range p.List(param.Name) {
				if detail := checkValue(param, typ, format, item); detail != "" {
					details = append(details, detail)
					break
				}
			}
			continue
		}
		if v, ok := p.Get(param.Name); ok {
			if detail := checkValue(param, typ, format, v); detail != "" {
				details = append(details, detail)
			}
		}
	}
	return details
}

func checkValue(param openapi.Parameter, typ, format, v string) string {
	subject := param.Name
	if param.IsArray() {
		subject += " elements"
	}
	switch typ {
	case "integer":
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return subject + " must be an integer"
		}
		return checkBounds(param, subject, float64(n))
	case "number":
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return subject + " must be a number"
		}
		return checkBounds(param, subject, f)
	case "string":
		if format == "date" {
			if _, err := time.Parse(domain.ISODateLayout, v); err != nil {
				return subject + " must be a date in YYYY-MM-DD format"
			}
		}
	}
	return ""
}

func checkBounds(param openapi.Parameter, subject string, v float64) string {
	if param.Minimum != nil && v < *param.Minimum {
		return fmt.Sprintf("%s must be greater than or equal to %s", subject, formatNumber(*param.Minimum))
	}
	if param.Maximum != nil && v > *param.Maximum {
		return fmt.Sprintf("%s must be less than or equal to %s", subject, formatNumber(*param.Maximum))
	}
	return ""
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Query is everything a list operation needs from the request.
type Query struct {
	Params Params
	Page   jsonapi.Page
}

// Parse filters and validates raw against declared and reads the page
// parameters. Every problem found is reported in a single
// *domain.ValidationError.
func Parse(raw url.Values, declared []openapi.Parameter, defaults jsonapi.PageDefaults) (Query, error) {
	params := Filter(raw, declared)
	page, details := jsonapi.ParsePage(raw, defaults)
	details = append(details, Validate(params, declared)...)
	if len(details) > 0 {
		return Query{}, domain.NewValidationError(details...)
	}
	return Query{Params: params, Page: page}, nil
}

// Names returns the names of the present parameters in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, p.Len())
	for k := range p.scalars {
		names = append(names, k)
	}
	for k := range p.lists {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
