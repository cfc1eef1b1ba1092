package viml

// PatternChunkKind enumerates the chunk kinds produced by parsePattern.
type PatternChunkKind int

const (
	PatLiteral PatternChunkKind = iota
	PatHome          // ~
	PatCurrentFile   // %
	PatAlternate     // #
	PatArguments     // ##
	PatAnyRecurse    // **
	PatAny           // *
	PatOneChar       // ?
	PatCollection    // [...]
	PatBranch        // {a,b,c}
	PatEnv           // $VAR
	PatExprGlob      // `=expr`
	PatShellGlob     // `shell`
)

// PatternChunk is one element of a Pattern.
type PatternChunk struct {
	Kind     PatternChunkKind
	Text     string          // literal text, collection body, env name, shell text
	Expr     *ExprNode       // PatExprGlob
	Branches []Pattern       // PatBranch
}

// Pattern is a parsed glob pattern: a sequence of chunks.
type Pattern struct {
	Chunks []PatternChunk
}

// Glob is the list of patterns attached to file-argument commands
// (:edit, :vimgrep, ...), each parsed independently and whitespace
// separated.
type Glob struct {
	Patterns []Pattern
}

const patternSpecialChars = "`#*?%\\[{}]$\t "

func isPatternLiteralByte(b byte) bool {
	for i := 0; i < len(patternSpecialChars); i++ {
		if patternSpecialChars[i] == b {
			return false
		}
	}
	return true
}

// parsePattern parses one glob pattern starting at i. isBranch stops at an
// unescaped ',' or '}' (inside a {a,b,c} branch); isGlob governs whether
// `=expr`/`shell` backtick forms and $ENV are recognised (plain :substitute
// patterns are not globs).
func parsePattern(s string, i int, isBranch, isGlob bool) (Pattern, int, error) {
	var pat Pattern
	for i < len(s) {
		c := s[i]
		if isBranch && (c == ',' || c == '}') {
			break
		}
		if isWhite(c) {
			break
		}
		switch c {
		case '~':
			if len(pat.Chunks) == 0 {
				pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatHome})
				i++
				continue
			}
		case '%':
			if i+1 < len(s) && s[i+1] == '%' {
				// A literal '%' is written \%, handled by the literal run
				// below; %% is not special, so each '%' is its own
				// PatCurrentFile chunk.
			}
			pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatCurrentFile})
			i++
			continue
		case '#':
			if i+1 < len(s) && s[i+1] == '#' {
				pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatArguments})
				i += 2
				continue
			}
			pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatAlternate})
			i++
			continue
		case '*':
			if i+1 < len(s) && s[i+1] == '*' {
				pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatAnyRecurse})
				i += 2
				continue
			}
			pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatAny})
			i++
			continue
		case '?':
			pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatOneChar})
			i++
			continue
		case '[':
			end := i + 1
			for end < len(s) && s[end] != ']' {
				end++
			}
			if end >= len(s) {
				// Unterminated: fall through to literal handling.
				break
			}
			pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatCollection, Text: s[i+1 : end]})
			i = end + 1
			continue
		case '{':
			branch, end, err := parseBranch(s, i)
			if err != nil {
				return pat, i, err
			}
			pat.Chunks = append(pat.Chunks, branch)
			i = end
			continue
		case '$':
			if isGlob {
				end := findEnvEnd(s, i+1)
				pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatEnv, Text: s[i+1 : end]})
				i = end
				continue
			}
		case '`':
			if isGlob {
				chunk, end, ok := parseBacktickGlob(s, i)
				if ok {
					pat.Chunks = append(pat.Chunks, chunk)
					i = end
					continue
				}
			}
		}
		// Literal run: consume escapes and plain bytes up to the next
		// special character.
		start := i
		for i < len(s) {
			b := s[i]
			if b == '\\' && i+1 < len(s) {
				i += 2
				continue
			}
			if !isPatternLiteralByte(b) || (isBranch && (b == ',' || b == '}')) {
				break
			}
			i++
		}
		if i > start {
			pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatLiteral, Text: s[start:i]})
			continue
		}
		// No progress: treat the offending byte as literal to guarantee
		// forward progress.
		pat.Chunks = append(pat.Chunks, PatternChunk{Kind: PatLiteral, Text: string(c)})
		i++
	}
	return pat, i, nil
}

func parseBranch(s string, i int) (PatternChunk, int, error) {
	i++ // '{'
	chunk := PatternChunk{Kind: PatBranch}
	for {
		sub, end, err := parsePattern(s, i, true, true)
		if err != nil {
			return chunk, i, err
		}
		chunk.Branches = append(chunk.Branches, sub)
		i = end
		if i < len(s) && s[i] == ',' {
			i++
			continue
		}
		break
	}
	if i < len(s) && s[i] == '}' {
		i++
	} else {
		// An unterminated branch is still returned as a PatBranch
		// chunk; printPattern renders it with a closing '}'.
	}
	return chunk, i, nil
}

func parseBacktickGlob(s string, i int) (PatternChunk, int, bool) {
	start := i
	i++ // '`'
	if i < len(s) && s[i] == '=' {
		i++
		exprStart := i
		for i < len(s) && s[i] != '`' {
			i++
		}
		if i >= len(s) {
			return PatternChunk{}, start, false
		}
		expr, _, err := ParseExpr(s[exprStart:i])
		if err != nil {
			return PatternChunk{}, start, false
		}
		return PatternChunk{Kind: PatExprGlob, Expr: expr}, i + 1, true
	}
	shellStart := i
	for i < len(s) && s[i] != '`' {
		i++
	}
	if i >= len(s) {
		return PatternChunk{}, start, false
	}
	return PatternChunk{Kind: PatShellGlob, Text: s[shellStart:i]}, i + 1, true
}

// parseFiles loops parsePattern separated by whitespace, as used by
// :edit, :vimgrep, and similar file-argument commands.
func parseFiles(s string, i int) (Glob, int, error) {
	var g Glob
	for {
		i = skipWhite(s, i)
		if i >= len(s) {
			break
		}
		pat, end, err := parsePattern(s, i, false, true)
		if err != nil {
			return g, i, err
		}
		if end == i {
			break
		}
		g.Patterns = append(g.Patterns, pat)
		i = end
	}
	return g, i, nil
}
