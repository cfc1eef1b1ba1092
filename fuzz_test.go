package viml

import "testing"

// FuzzParseExpr guards the expression parser against panics and hangs
// on arbitrary input.
func FuzzParseExpr(f *testing.F) {
	for _, seed := range []string{
		"",
		"a + b * c",
		"a ? b : c",
		"[1, 2, 3]",
		"{'a': 1}",
		"a.b.c",
		"a{b}c",
		"d.a:2",
		"1.2.3",
		"@",
		"s:foo#bar()",
		"a[1:2]",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("ParseExpr(%q) panicked: %v", s, r)
			}
		}()
		_, _, _ = ParseExpr(s)
	})
}

// FuzzParseCommands guards the Ex-command parser (including the
// block-sequence driver) against panics and non-terminating recursion on
// arbitrary scripts.
func FuzzParseCommands(f *testing.F) {
	for _, seed := range []string{
		"",
		"echo 1 + 2 * 3",
		"if 1\nendif",
		"for i in range(10) | echo i | endfor",
		"let [a, b] = [1, 2]",
		"s/foo/bar/g",
		"function! Foo(a, b, ...) abort\nendfunction",
		"if\nif\nif\nendif",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("ParseCommands(%q) panicked: %v", s, r)
			}
		}()
		_, _ = ParseCommands(DefaultOptions(), Lines(splitLines(s)))
	})
}
