package viml

import (
	"strings"
	"testing"

	"kr.dev/diff"
)

func TestParseExprTokensMatchesRecursiveDescent(t *testing.T) {
	cases := []string{
		"a + b * c",
		"a * b + c",
		"a . b . c",
		"a ? b : c ? d : e",
		"f(a, b)[0].name",
		"a ==? b",
		"[1, 2, 3]",
		`{'a': 1, 'b': 2}`,
		"a{b}c",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			want, _, err := ParseExpr(input)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", input, err)
			}
			got, _, err := ParseExprTokens(input)
			if err != nil {
				t.Fatalf("ParseExprTokens(%q): %v", input, err)
			}
			diff.Test(t, t.Errorf, stripExprPos(got), stripExprPos(want))
		})
	}
}

func TestParseExprTokensLambda(t *testing.T) {
	got, _, err := ParseExprTokens("{a, b -> a + b}")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpLambda {
		t.Fatalf("Op = %v, want OpLambda", got.Op)
	}
	if want := []string{"a", "b"}; !equalStrings(got.LambdaParams, want) {
		t.Fatalf("LambdaParams = %v, want %v", got.LambdaParams, want)
	}
	if got.Operand == nil || got.Operand.Op != OpAdd {
		t.Fatalf("Operand = %+v, want Add", got.Operand)
	}
}

func TestParseExprTokensEmptyDict(t *testing.T) {
	got, _, err := ParseExprTokens("{}")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpDictionary || len(got.Items) != 0 {
		t.Fatalf("got %+v, want empty Dictionary", got)
	}
}

func TestParseExprTokensCurlyName(t *testing.T) {
	got, _, err := ParseExprTokens("a{b}c")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpVariableName || len(got.Parts) != 3 {
		t.Fatalf("got %+v, want VariableName with 3 parts", got)
	}
	if got.Parts[1].Op != OpCurlyName {
		t.Fatalf("Parts[1] = %+v, want CurlyName", got.Parts[1])
	}
}

func TestParseExprTokensChainedComparisonDiagnostic(t *testing.T) {
	_, hl, err := ParseExprTokens("a == b == c")
	if err == nil {
		t.Fatal("expected chained-comparison error, got nil")
	}
	if !strings.Contains(err.Error(), "chained") {
		t.Fatalf("error = %v, want it to mention chaining", err)
	}
	found := false
	for _, h := range hl {
		if h.Group == HLInvalidComparisonOperator {
			found = true
		}
	}
	if !found {
		t.Fatalf("highlights = %+v, want an HLInvalidComparisonOperator entry", hl)
	}
}

func TestParseExprTokensHighlightGroups(t *testing.T) {
	_, hl, err := ParseExprTokens("1 + a")
	if err != nil {
		t.Fatal(err)
	}
	var groups []ExprHighlightGroup
	for _, h := range hl {
		groups = append(groups, h.Group)
	}
	want := []ExprHighlightGroup{HLNumber, HLOperator, HLIdentifier}
	if len(groups) != len(want) {
		t.Fatalf("groups = %v, want %v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Fatalf("groups = %v, want %v", groups, want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func FuzzParseExprTokens(f *testing.F) {
	for _, seed := range []string{
		"1 + 2 * 3", `"abc" . 'def'`, "a ? b : c", "[1, 2, 3]", "{'a': 1}",
		"{a, b -> a + b}", "f(x)[0]", "a.b.c", "&opt", "$HOME", "@a", "a == b == c",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _, _ = ParseExprTokens(s)
		}()
		<-done
	})
}
