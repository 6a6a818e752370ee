// Package ast holds the lowered Zinc program.
//
// Statements, expressions and blocks live in typed arenas and refer to each
// other by 1-based IDs; kind-specific data sits in per-kind payload arenas
// reached through Stmt.Payload and Expr.Payload. Suffix chains nest inward:
// xs[0].name is Member(Index(Ident xs, 0), name). Binary chains are folded
// left to right with no precedence.
package ast
