package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Kind identifies the resource a predicate filters.
type Kind int

const (
	Developers Kind = iota
	Games
	Reviews
)

func (k Kind) String() string {
	switch k {
	case Developers:
		return "developers"
	case Games:
		return "games"
	case Reviews:
		return "reviews"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Fragment is one filter rule. The set of implementations is closed.
type Fragment interface {
	isFragment()
}

// Exact matches Column against the value of Param.
type Exact struct {
	Column string
	Param  string
}

// Range matches Column between the values of MinParam and MaxParam. An
// unset bound takes the permissive default. With both unset the fragment is
// omitted, unless IncludeNullWhenUnbounded is set. In that case NULL rows
// match whenever the effective range covers the permissive bounds, whether
// the bounds were omitted or sent explicitly.
type Range struct {
	Column                   string
	MinParam                 string
	MaxParam                 string
	IncludeNullWhenUnbounded bool
}

// Membership matches Column against any element of the list Param. Each
// element gets its own bind named BindPrefix followed by its index.
type Membership struct {
	Column     string
	Param      string
	BindPrefix string
}

// Day matches the UTC calendar day of Column against Param, ignoring time of
// day and the session time zone.
type Day struct {
	Column string
	Param  string
}

func (Exact) isFragment()      {}
func (Range) isFragment()      {}
func (Membership) isFragment() {}
func (Day) isFragment()        {}

// Bounds are the permissive defaults for an unset range bound.
type Bounds struct {
	Min float64
	Max float64
}

var rules = map[Kind][]Fragment{
	Developers: {
		Exact{Column: "name", Param: "name"},
	},
	Games: {
		Range{Column: "score", MinParam: "scoreMin", MaxParam: "scoreMax", IncludeNullWhenUnbounded: true},
		Exact{Column: "name", Param: "name"},
		Exact{Column: "developer_id", Param: "developerId"},
	},
	Reviews: {
		Exact{Column: "reviewer", Param: "reviewer"},
		Membership{Column: "game_id", Param: "gameIds", BindPrefix: "id"},
		Range{Column: "score", MinParam: "scoreMin", MaxParam: "scoreMax"},
		Day{Column: "review_date", Param: "reviewDate"},
	},
}

// Rules returns the filter rules of a resource kind.
func Rules(kind Kind) []Fragment {
	return rules[kind]
}

// Predicate is a WHERE clause and its named binds.
type Predicate struct {
	clauses []string
	args    pgx.NamedArgs
}

// Build applies the rules of kind to p.
func Build(kind Kind, p Params, bounds Bounds) Predicate {
	return BuildFrom(Rules(kind), p, bounds)
}

// BuildFrom applies an explicit rule list to p.
func BuildFrom(fragments []Fragment, p Params, bounds Bounds) Predicate {
	pred := Predicate{args: pgx.NamedArgs{}}
	for _, f := range fragments {
		switch f := f.(type) {
		case Exact:
			if v, ok := p.Get(f.Param); ok {
				pred.add(fmt.Sprintf("%s = @%s", f.Column, f.Param))
				pred.args[f.Param] = v
			}
		case Range:
			lo, hasLo := p.Get(f.MinParam)
			hi, hasHi := p.Get(f.MaxParam)
			if !hasLo && !hasHi && !f.IncludeNullWhenUnbounded {
				continue
			}
			clause := fmt.Sprintf("%s BETWEEN @%s AND @%s", f.Column, f.MinParam, f.MaxParam)
			if f.IncludeNullWhenUnbounded && covers(lo, hasLo, hi, hasHi, bounds) {
				clause = fmt.Sprintf("(%s OR %s IS NULL)", clause, f.Column)
			}
			pred.add(clause)
			pred.args[f.MinParam] = bound(lo, hasLo, bounds.Min)
			pred.args[f.MaxParam] = bound(hi, hasHi, bounds.Max)
		case Membership:
			items := p.List(f.Param)
			if len(items) == 0 {
				continue
			}
			binds := make([]string, len(items))
			for i, item := range items {
				name := fmt.Sprintf("%s%d", f.BindPrefix, i)
				binds[i] = "@" + name
				pred.args[name] = item
			}
			pred.add(fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(binds, ", ")))
		case Day:
			if v, ok := p.Get(f.Param); ok {
				pred.add(fmt.Sprintf("CAST((%s AT TIME ZONE 'UTC') AS DATE) = CAST(@%s AS DATE)", f.Column, f.Param))
				pred.args[f.Param] = v
			}
		}
	}
	return pred
}

// covers reports whether the requested range includes all of bounds. A bound
// that does not parse never covers.
func covers(lo string, hasLo bool, hi string, hasHi bool, bounds Bounds) bool {
	if hasLo {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil || v > bounds.Min {
			return false
		}
	}
	if hasHi {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil || v < bounds.Max {
			return false
		}
	}
	return true
}

func bound(v string, ok bool, fallback float64) any {
	if ok {
		return v
	}
	return fallback
}

func (p *Predicate) add(clause string) {
	p.clauses = append(p.clauses, clause)
}

// Where returns the clause, starting with WHERE 1=1 and adding one AND per
// present filter.
func (p Predicate) Where() string {
	var b strings.Builder
	b.WriteString("WHERE 1=1")
	for _, c := range p.clauses {
		b.WriteString(" AND ")
		b.WriteString(c)
	}
	return b.String()
}

// Args returns the named binds.
func (p Predicate) Args() pgx.NamedArgs {
	return p.args
}

// Rewrite converts the @name binds in sql into positional $n placeholders
// and returns the matching arguments.
func (p Predicate) Rewrite(ctx context.Context, sql string) (string, []any, error) {
	return p.args.RewriteQuery(ctx, nil, sql, nil)
}
