package viml

import "testing"

func TestPrintStringRoundTripsIfElse(t *testing.T) {
	root, err := ParseCommands(DefaultOptions(), Lines([]string{
		`if x > 0`,
		`echo "pos"`,
		`else`,
		`echo "neg"`,
		`endif`,
	}))
	if err != nil {
		t.Fatalf("ParseCommands: %v", err)
	}
	out, err := PrintString(root, DefaultPrinterOptions())
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	want := "if x > 0\n" +
		"  echo \"pos\"\n" +
		"else\n" +
		"  echo \"neg\"\n" +
		"endif\n"
	if out != want {
		t.Fatalf("PrintString =\n%s\nwant:\n%s", out, want)
	}

	// Re-parsing the printed text should produce a structurally
	// equivalent command tree.
	root2, err := ParseCommands(DefaultOptions(), Lines(splitLines(out)))
	if err != nil {
		t.Fatalf("re-ParseCommands: %v", err)
	}
	out2, err := PrintString(root2, DefaultPrinterOptions())
	if err != nil {
		t.Fatalf("re-PrintString: %v", err)
	}
	if out2 != out {
		t.Fatalf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", out, out2)
	}
}

func TestPrintStringEcho(t *testing.T) {
	root, err := ParseCommands(DefaultOptions(), Lines([]string{`echo 1 + 2 * 3`}))
	if err != nil {
		t.Fatalf("ParseCommands: %v", err)
	}
	out, err := PrintString(root, DefaultPrinterOptions())
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	want := "echo 1 + 2 * 3\n"
	if out != want {
		t.Fatalf("PrintString = %q, want %q", out, want)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
