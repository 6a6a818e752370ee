package grammar

// Production pairs a rule with its right-hand side in PEG notation:
// ordered choice '|', '?' optional, '*' repetition, quoted terminals.
type Production struct {
	Rule Rule
	Body string
}

var productions = []Production{
	{Program, `statement* EOF`},
	{Statement, `(let_stmt | if_stmt | loop_stmt | break_stmt | fn_def | expr_stmt) ";"?`},
	{LetStmt, `"let" identifier "=" expr`},
	{IfStmt, `"if" expr block ("else" (block | if_stmt))?`},
	{LoopStmt, `"loop" block`},
	{BreakStmt, `"break"`},
	{FnDef, `"fn" identifier "(" param_list? ")" block`},
	{ParamList, `identifier ("," identifier)* ","?`},
	{Block, `"{" statement* "}"`},
	{ExprStmt, `expr`},
	{Expr, `term (op term)*`},
	{Op, `"|>" | "+" | "==" | "!=" | ">=" | "<=" | ">" | "<"`},
	{Term, `atom suffix*`},
	{Suffix, `indexing_suffix | member_suffix`},
	{IndexingSuffix, `"[" expr "]"`},
	{MemberSuffix, `"." identifier ("(" arg_list ")")?`},
	{Atom, `call | array | group | string | number | identifier`},
	{Call, `identifier "(" arg_list ")"`},
	{ArgList, `(expr ("," expr)* ","?)?`},
	{Array, `"[" (expr ("," expr)* ","?)? "]"`},
	{Group, `"(" expr ")"`},
	{String, `'"' ('\"' | '\\' | !('"' | NEWLINE) ANY)* '"'`},
	{Number, `"-"? DIGIT+ ("." DIGIT+)?`},
	{Identifier, `!keyword (LETTER | "_") (LETTER | DIGIT | "_")*`},
}

// Productions returns the grammar table in declaration order.
func Productions() []Production {
	out := make([]Production, len(productions))
	copy(out, productions)
	return out
}

// Trivia documents what the lexer skips between tokens.
const Trivia = `WHITESPACE = " " | "\t" | "\r" | "\n"
COMMENT    = "//" (!NEWLINE ANY)* | "#" (!NEWLINE ANY)* | "/*" (COMMENT | !"*/" ANY)* "*/"`
