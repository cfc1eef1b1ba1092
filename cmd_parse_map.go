package viml

import "strings"

var mapOptionWords = []struct {
	word string
	flag MapFlags
}{
	{"<buffer>", MapBuffer},
	{"<nowait>", MapNowait},
	{"<silent>", MapSilent},
	{"<special>", MapSpecial},
	{"<script>", MapScript},
	{"<expr>", MapExpr},
	{"<unique>", MapUnique},
}

// parseMap parses :map/:noremap/:unmap's leading <buffer>/<nowait>/...
// options, splits the LHS (terminated by whitespace, with '\'/<C-v>
// escaping the next character), and takes the rest of the line as RHS.
// <expr> mappings additionally parse the RHS as an expression.
func parseMap(ps *parseState, node *CommandNode, arg string) error {
	i := 0
	for {
		i = skipWhite(arg, i)
		matched := false
		for _, opt := range mapOptionWords {
			if strings.HasPrefix(arg[i:], opt.word) {
				node.MapFlags |= opt.flag
				i += len(opt.word)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	i = skipWhite(arg, i)
	lhsStart := i
	for i < len(arg) && !isWhite(arg[i]) {
		if (arg[i] == '\\' || arg[i] == 0x16) && i+1 < len(arg) {
			i += 2
			continue
		}
		i++
	}
	node.MapLHS = arg[lhsStart:i]
	i = skipWhite(arg, i)
	node.MapRHS = arg[i:]
	if tc := ps.Options.Termcodes; tc != nil {
		node.MapLHS = tc.Replace(node.MapLHS)
		node.MapRHS = tc.Replace(node.MapRHS)
	}
	if node.MapFlags&MapExpr != 0 && node.MapRHS != "" {
		expr, _, err := ParseExpr(node.MapRHS)
		if err != nil {
			return err
		}
		node.Exprs = []*ExprNode{expr}
	}
	return nil
}

// parseMenu parses :menu/:unmenu's leading flags, optional icon=FILE,
// optional N.N.N priority, optional enable/disable, then the dotted menu
// path, splitting out a <TAB>-introduced tooltip.
func parseMenu(ps *parseState, node *CommandNode, arg string) error {
	i := 0
	for {
		i = skipWhite(arg, i)
		switch {
		case strings.HasPrefix(arg[i:], "<silent>"):
			node.MapFlags |= MapSilent
			i += len("<silent>")
		case strings.HasPrefix(arg[i:], "<script>"):
			node.MapFlags |= MapScript
			i += len("<script>")
		case strings.HasPrefix(arg[i:], "<special>"):
			node.MapFlags |= MapSpecial
			i += len("<special>")
		case strings.HasPrefix(arg[i:], "icon="):
			j := i + len("icon=")
			end := j
			for end < len(arg) && !isWhite(arg[end]) {
				end++
			}
			i = end
		default:
			goto afterFlags
		}
	}
afterFlags:
	i = skipWhite(arg, i)
	// Optional N.N.N priority: digits and dots only, whitespace terminated.
	if i < len(arg) && isDigit(arg[i]) {
		j := i
		for j < len(arg) && (isDigit(arg[j]) || arg[j] == '.') {
			j++
		}
		if j < len(arg) && isWhite(arg[j]) {
			i = j
		}
	}
	i = skipWhite(arg, i)
	if strings.HasPrefix(arg[i:], "enable") && (i+6 >= len(arg) || isWhite(arg[i+6])) {
		i += 6
	} else if strings.HasPrefix(arg[i:], "disable") && (i+7 >= len(arg) || isWhite(arg[i+7])) {
		i += 7
	}
	i = skipWhite(arg, i)
	pathEnd := i
	for pathEnd < len(arg) && arg[pathEnd] != '\t' {
		if arg[pathEnd] == '\\' && pathEnd+1 < len(arg) {
			pathEnd += 2
			continue
		}
		pathEnd++
	}
	pathStr := arg[i:pathEnd]
	node.Menu.Path = splitMenuPath(pathStr)
	if pathEnd < len(arg) && arg[pathEnd] == '\t' {
		node.Menu.Tooltip = arg[pathEnd+1:]
	} else {
		node.RawArg = strings.TrimSpace(arg[pathEnd:])
	}
	return nil
}

func splitMenuPath(s string) []string {
	var parts []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if s[i] == '.' {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(s[i])
	}
	if cur.Len() > 0 || len(parts) == 0 {
		parts = append(parts, cur.String())
	}
	return parts
}
