// Package grammar names the productions of the Zinc grammar.
//
// The parser in internal/parser implements each production as one function;
// parse tree nodes (internal/ptree) are tagged with the Rule that produced
// them. Productions returns the declarative table the parser follows.
package grammar

// Rule is a named production.
type Rule uint8

const (
	Invalid Rule = iota
	Program
	Statement
	LetStmt
	IfStmt
	LoopStmt
	BreakStmt
	FnDef
	ParamList
	Block
	ExprStmt
	Expr
	Op
	Term
	Atom
	Call
	ArgList
	Array
	Group
	String
	Number
	Identifier
	Suffix
	IndexingSuffix
	MemberSuffix
)

var ruleNames = [...]string{
	Invalid:        "invalid",
	Program:        "program",
	Statement:      "statement",
	LetStmt:        "let_stmt",
	IfStmt:         "if_stmt",
	LoopStmt:       "loop_stmt",
	BreakStmt:      "break_stmt",
	FnDef:          "fn_def",
	ParamList:      "param_list",
	Block:          "block",
	ExprStmt:       "expr_stmt",
	Expr:           "expr",
	Op:             "op",
	Term:           "term",
	Atom:           "atom",
	Call:           "call",
	ArgList:        "arg_list",
	Array:          "array",
	Group:          "group",
	String:         "string",
	Number:         "number",
	Identifier:     "identifier",
	Suffix:         "suffix",
	IndexingSuffix: "indexing_suffix",
	MemberSuffix:   "member_suffix",
}

// labels are what "expected ..." messages say; rules without one use their name.
var labels = map[Rule]string{
	Statement:  "statement",
	Block:      "block",
	Expr:       "expression",
	Term:       "expression",
	Atom:       "expression",
	Identifier: "identifier",
	String:     "string literal",
	Number:     "number",
	ParamList:  "parameter list",
	ArgList:    "argument list",
	Op:         "operator",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "rule(?)"
}

// Label is the human wording used in "expected ..." messages.
func (r Rule) Label() string {
	if l, ok := labels[r]; ok {
		return l
	}
	return r.String()
}

// IsStatement reports whether r is one of the statement variants.
func (r Rule) IsStatement() bool {
	switch r {
	case LetStmt, IfStmt, LoopStmt, BreakStmt, FnDef, ExprStmt:
		return true
	default:
		return false
	}
}

// Lookup resolves a rule by its snake_case name.
func Lookup(name string) (Rule, bool) {
	for i, n := range ruleNames {
		if n == name && Rule(i) != Invalid {
			return Rule(i), true
		}
	}
	return Invalid, false
}
