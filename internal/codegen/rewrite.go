package codegen

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"zinc/internal/ast"
	"zinc/internal/diag"
)

type memberKey struct {
	recv   string
	method string
}

// memberRule lowers one zinc_std surface call; lower runs only for an accepted arity.
type memberRule struct {
	arities []int
	lower   func(a []string) string
}

var memberRules = map[memberKey]memberRule{
	{"db", "query"}: {[]int{2}, func(a []string) string {
		return fmt.Sprintf("zinc_std::db::query(&%s, &%s)", a[0], a[1])
	}},
	{"fs", "read"}: {[]int{1}, func(a []string) string {
		return fmt.Sprintf("zinc_std::fs::read(&%s)", a[0])
	}},
	{"fs", "write"}: {[]int{2}, func(a []string) string {
		return fmt.Sprintf("zinc_std::fs::write(&%s, &%s)", a[0], a[1])
	}},
	{"html", "select"}: {[]int{2}, func(a []string) string {
		return fmt.Sprintf("zinc_std::html::select(&%s, &%s)", a[0], a[1])
	}},
	{"json", "parse"}: {[]int{1}, func(a []string) string {
		return fmt.Sprintf("zinc_std::json::parse(%s)", a[0])
	}},
	{"json", "get"}: {[]int{2}, func(a []string) string {
		return fmt.Sprintf("zinc_std::json::get(&%s, %s)", a[0], a[1])
	}},
	{"json", "at"}: {[]int{2}, func(a []string) string {
		return fmt.Sprintf("zinc_std::json::at(&%s, %s)", a[0], a[1])
	}},
	{"json", "stringify"}: {[]int{1}, func(a []string) string {
		return fmt.Sprintf("zinc_std::json::stringify(&%s)", a[0])
	}},
	{"spider", "get"}: {[]int{1, 2, 3}, func(a []string) string {
		switch len(a) {
		case 1:
			return fmt.Sprintf("zinc_std::spider::get(%s, None)", a[0])
		case 2:
			return fmt.Sprintf("zinc_std::spider::get(%s, Some(%s))", a[0], a[1])
		default:
			return fmt.Sprintf("zinc_std::spider::get_with_proxy(%s, Some(%s), Some(%s))", a[0], a[1], a[2])
		}
	}},
	{"spider", "proxy"}: {[]int{2}, func(a []string) string {
		return fmt.Sprintf("zinc_std::spider::get_with_proxy(%s, None, Some(%s))", a[0], a[1])
	}},
	{"py", "eval"}: {[]int{1}, func(a []string) string {
		return fmt.Sprintf("zinc_std::py::eval(&%s)", a[0])
	}},
}

// memberCall lowers recv.method(args) where recv is a bare identifier.
func (g *generator) memberCall(at ast.ExprID, recv, method string, args []string) string {
	rule, ok := memberRules[memberKey{recv, method}]
	if !ok {
		return recv + "." + method + "(" + strings.Join(args, ", ") + ")"
	}
	if !slices.Contains(rule.arities, len(args)) {
		g.arityDrop(at, recv+"."+method, rule.arities, len(args))
		return ""
	}
	return rule.lower(args)
}

// call lowers name(args) through the builtin table: print and leak.
func (g *generator) call(at ast.ExprID, name string, args []string) string {
	switch name {
	case "print":
		if len(args) == 0 {
			return "println!()"
		}
		placeholders := strings.TrimSuffix(strings.Repeat("{:?} ", len(args)), " ")
		return `println!("` + placeholders + `", ` + strings.Join(args, ", ") + ")"
	case "leak":
		if len(args) != 0 {
			g.arityDrop(at, "leak", []int{0}, len(args))
			return ""
		}
		return "zinc_std::leak()"
	default:
		return name + "(" + strings.Join(args, ", ") + ")"
	}
}

func (g *generator) arityDrop(at ast.ExprID, what string, want []int, got int) {
	e := g.b.Exprs.Get(at)
	if e == nil {
		return
	}
	counts := make([]string, len(want))
	for i, n := range want {
		counts[i] = fmt.Sprint(n)
	}
	g.drop(diag.GenArityMismatch, e.Span,
		fmt.Sprintf("`%s` takes %s argument(s), got %d", what, strings.Join(counts, " or "), got))
}

// Receivers lists the identifiers with rewritten methods, sorted.
func Receivers() []string {
	seen := make(map[string]struct{})
	for k := range memberRules {
		seen[k.recv] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Methods lists the rewritten methods of recv, sorted.
func Methods(recv string) []string {
	var out []string
	for k := range memberRules {
		if k.recv == recv {
			out = append(out, k.method)
		}
	}
	sort.Strings(out)
	return out
}

// Arities returns the accepted argument counts of recv.method, or nil if it is not rewritten.
func Arities(recv, method string) []int {
	rule, ok := memberRules[memberKey{recv, method}]
	if !ok {
		return nil
	}
	return slices.Clone(rule.arities)
}
