package grammar

import "testing"

func TestEveryRuleHasProduction(t *testing.T) {
	seen := make(map[Rule]bool)
	for _, p := range Productions() {
		if seen[p.Rule] {
			t.Fatalf("rule %s defined twice", p.Rule)
		}
		seen[p.Rule] = true
		if p.Body == "" {
			t.Fatalf("rule %s has an empty body", p.Rule)
		}
	}
	for r := Program; r <= MemberSuffix; r++ {
		if !seen[r] {
			t.Errorf("rule %s has no production", r)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for r := Program; r <= MemberSuffix; r++ {
		got, ok := Lookup(r.String())
		if !ok || got != r {
			t.Fatalf("Lookup(%q) = %v,%v", r.String(), got, ok)
		}
	}
	if _, ok := Lookup("invalid"); ok {
		t.Fatalf("invalid must not be addressable")
	}
}

func TestLabels(t *testing.T) {
	if Expr.Label() != "expression" {
		t.Fatalf("Expr label = %q", Expr.Label())
	}
	if IfStmt.Label() != "if_stmt" {
		t.Fatalf("IfStmt label = %q", IfStmt.Label())
	}
	if !LoopStmt.IsStatement() || Block.IsStatement() {
		t.Fatalf("IsStatement misclassifies")
	}
}
