package viml

import "strings"

// Small per-command grammars: each of these owns exactly
// one command's argument syntax and nothing else.

// parseGlobal parses :global/:vglobal's [delim]pattern[delim] followed by
// the command to run on matching lines. The command text is kept as-is;
// it is re-parsed at execution time in Vim, so it stays a string here
// too.
func parseGlobal(ps *parseState, node *CommandNode, arg string) error {
	i := skipWhite(arg, 0)
	if i >= len(arg) {
		return newParseError(arg, "E35: no previous regular expression", i)
	}
	delim := arg[i]
	if isWordChar(delim) {
		return newParseError(arg, "E146: regular expressions can't be delimited by letters", i)
	}
	i++
	rx, end, _ := getRegex(arg, i, delim)
	node.Regex = rx
	node.RawArg = strings.TrimLeft(arg[end:], " \t")
	return nil
}

// parseVimgrep parses /pattern/[gj] followed by file globs.
func parseVimgrep(ps *parseState, node *CommandNode, arg string) error {
	i := skipWhite(arg, 0)
	if i >= len(arg) {
		return newParseError(arg, "E683: file name missing or invalid pattern", i)
	}
	if !isWordChar(arg[i]) && arg[i] != '%' && arg[i] != '#' {
		delim := arg[i]
		rx, end, ok := getRegex(arg, i+1, delim)
		if !ok {
			return newParseError(arg, "E682: invalid search pattern or delimiter", i)
		}
		node.Regex = rx
		i = end
		for i < len(arg) && (arg[i] == 'g' || arg[i] == 'j') {
			if arg[i] == 'g' {
				node.SubFlags |= SubGlobal
			}
			i++
		}
	} else {
		// Without a delimiter the first whitespace-separated word is the
		// pattern.
		start := i
		for i < len(arg) && !isWhite(arg[i]) {
			i++
		}
		node.Regex = Regex{Source: arg[start:i]}
	}
	i = skipWhite(arg, i)
	if i >= len(arg) {
		return newParseError(arg, "E683: file name missing or invalid pattern", i)
	}
	g, _, err := parseFiles(arg, i)
	if err != nil {
		return err
	}
	node.Glob = g
	return nil
}

// parseNormal keeps :normal's argument verbatim — it is typed keys, not
// syntax, and even trailing whitespace is significant.
func parseNormal(ps *parseState, node *CommandNode, arg string) error {
	node.RawArg = arg
	return nil
}

// parseWincmd takes a single window-command character, or g plus one.
func parseWincmd(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	switch {
	case len(arg) == 1:
		node.Char = arg[0]
	case len(arg) == 2 && arg[0] == 'g':
		node.Char = arg[1]
		node.RawArg = arg
	default:
		return newParseError(arg, "E474: :wincmd requires exactly one argument", 0)
	}
	return nil
}

// parseZ accepts :z's kind characters (+ - ^ . =) optionally followed by
// a line-count.
func parseZ(ps *parseState, node *CommandNode, arg string) error {
	i := skipWhite(arg, 0)
	start := i
	for i < len(arg) && strings.IndexByte("+-^.=", arg[i]) >= 0 {
		i++
	}
	node.RawArg = arg[start:i]
	i = parseCountArg(node, arg, i)
	if i = skipWhite(arg, i); i < len(arg) {
		return newParseError(arg, "E144: non-numeric argument to :z", i)
	}
	return nil
}

// parseSort accepts flag characters and an optional /pattern/.
func parseSort(ps *parseState, node *CommandNode, arg string) error {
	i := 0
	for i < len(arg) {
		i = skipWhite(arg, i)
		if i >= len(arg) {
			break
		}
		c := arg[i]
		if strings.IndexByte("iurnxob", c) >= 0 {
			node.RawArg += string(c)
			i++
			continue
		}
		if c == '/' {
			rx, end, ok := getRegex(arg, i+1, '/')
			if !ok {
				return newParseError(arg, "E682: invalid search pattern or delimiter", i)
			}
			node.Regex = rx
			i = end
			continue
		}
		return newParseError(arg, "E475: invalid argument", i)
	}
	return nil
}

// parseDelmarks validates :delmarks' mark names and a-z style ranges.
// With a bang no marks may be named; without one they are required.
func parseDelmarks(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if node.Bang {
		if arg != "" {
			return newParseError(arg, "E474: :delmarks! accepts no argument", 0)
		}
		return nil
	}
	if arg == "" {
		return newParseError(arg, "E471: argument required", 0)
	}
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if isWhite(c) {
			continue
		}
		if isWordChar(c) || strings.IndexByte(`"[]^.<>'`, c) >= 0 {
			node.RawArg += string(c)
			continue
		}
		if c == '-' && i > 0 && i+1 < len(arg) {
			node.RawArg += "-"
			continue
		}
		return newParseError(arg, "E475: invalid argument", i)
	}
	return nil
}

// parseHistory accepts an optional history name (: / ? = @ or a word)
// and an optional [first][, last] index range.
func parseHistory(ps *parseState, node *CommandNode, arg string) error {
	i := skipWhite(arg, 0)
	if i < len(arg) && strings.IndexByte(":/?=@>", arg[i]) >= 0 {
		node.RawArg = string(arg[i])
		i++
	} else if i < len(arg) && !isDigit(arg[i]) && arg[i] != '-' {
		start := i
		for i < len(arg) && isWordChar(arg[i]) {
			i++
		}
		node.RawArg = arg[start:i]
		switch node.RawArg {
		case "", "cmd", "search", "expr", "input", "debug", "all":
		default:
			return newParseError(arg, "E488: trailing characters", start)
		}
	}
	for {
		i = skipWhite(arg, i)
		if i >= len(arg) {
			return nil
		}
		neg := false
		if arg[i] == '-' {
			neg = true
			i++
		}
		if i >= len(arg) || !isDigit(arg[i]) {
			return newParseError(arg, "E488: trailing characters", i)
		}
		n := 0
		for i < len(arg) && isDigit(arg[i]) {
			n = n*10 + int(arg[i]-'0')
			i++
		}
		if neg {
			n = -n
		}
		node.Numbers = append(node.Numbers, n)
		i = skipWhite(arg, i)
		if i < len(arg) && arg[i] == ',' {
			i++
			continue
		}
	}
}

// parseSignedCount parses :resize's optional [+-]N argument.
func parseSignedCount(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	i := 0
	neg := false
	switch arg[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i >= len(arg) || !isDigit(arg[i]) {
		return newParseError(arg, "E474: invalid argument", i)
	}
	n := 0
	for i < len(arg) && isDigit(arg[i]) {
		n = n*10 + int(arg[i]-'0')
		i++
	}
	if neg {
		n = -n
	}
	node.HasCount = true
	node.Count = n
	if i != len(arg) {
		return newParseError(arg, "E488: trailing characters", i)
	}
	return nil
}

// parseRedir parses :redir's target: END, > file, >> file, @reg with an
// optional append marker, or => / =>> variable.
func parseRedir(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "" || arg == "END":
		node.Redir = Redir{Kind: RedirEnd}
	case strings.HasPrefix(arg, ">>"):
		node.Redir = Redir{Kind: RedirAppend, File: strings.TrimSpace(arg[2:])}
	case strings.HasPrefix(arg, ">"):
		node.Redir = Redir{Kind: RedirFile, File: strings.TrimSpace(arg[1:])}
	case strings.HasPrefix(arg, "=>>"), strings.HasPrefix(arg, "=>"):
		appendVar := strings.HasPrefix(arg, "=>>")
		rest := arg[2:]
		if appendVar {
			rest = arg[3:]
		}
		rest = strings.TrimSpace(rest)
		e, _, err := ParseExpr(rest)
		if err != nil {
			return err
		}
		node.Redir = Redir{Kind: RedirVar, Var: e, VarAppend: appendVar}
	case arg[0] == '@':
		if len(arg) < 2 {
			return newParseError(arg, "E475: invalid argument", 0)
		}
		r := Redir{Kind: RedirRegister, Reg: arg[1]}
		if strings.HasSuffix(arg, ">>") {
			r.RegAppend = true
		}
		node.Redir = r
	default:
		return newParseError(arg, "E475: invalid argument", 0)
	}
	return nil
}

// parseSleep accepts a count with an optional trailing m (milliseconds).
func parseSleep(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	i := 0
	for i < len(arg) && isDigit(arg[i]) {
		node.Count = node.Count*10 + int(arg[i]-'0')
		node.HasCount = true
		i++
	}
	if i < len(arg) && arg[i] == 'm' {
		node.Char = 'm'
		i++
	}
	if i != len(arg) {
		return newParseError(arg, "E475: invalid argument", i)
	}
	return nil
}

// parseMark takes :mark/:k's single mark letter.
func parseMark(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if len(arg) != 1 {
		return newParseError(arg, "E471: argument required", 0)
	}
	c := arg[0]
	if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && c != '\'' && c != '`' {
		return newParseError(arg, "E191: argument must be a letter or forward/backward quote", 0)
	}
	node.Char = c
	return nil
}

// parseMatch parses a highlight group plus /pattern/, or the word none.
func parseMatch(ps *parseState, node *CommandNode, arg string) error {
	i := skipWhite(arg, 0)
	start := i
	for i < len(arg) && isWordChar(arg[i]) {
		i++
	}
	node.RawArg = arg[start:i]
	if node.RawArg == "" || node.RawArg == "none" {
		return nil
	}
	i = skipWhite(arg, i)
	if i >= len(arg) {
		return newParseError(arg, "E475: invalid argument", i)
	}
	delim := arg[i]
	rx, _, ok := getRegex(arg, i+1, delim)
	if !ok {
		return newParseError(arg, "E682: invalid search pattern or delimiter", i)
	}
	node.Regex = rx
	return nil
}

// parseLater parses :later/:earlier's count plus s/m/h/d/f unit.
func parseLater(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	i := 0
	for i < len(arg) && isDigit(arg[i]) {
		node.Count = node.Count*10 + int(arg[i]-'0')
		node.HasCount = true
		i++
	}
	if i < len(arg) {
		if strings.IndexByte("smhdf", arg[i]) < 0 || i+1 != len(arg) {
			return newParseError(arg, "E475: invalid argument", i)
		}
		node.Char = arg[i]
	}
	return nil
}

// parseBreakadd parses func/file/here breakpoint forms, shared by
// :breakadd and :breakdel.
func parseBreakadd(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	word, rest, _ := strings.Cut(arg, " ")
	switch word {
	case "func", "file":
		rest = strings.TrimSpace(rest)
		i := 0
		for i < len(rest) && isDigit(rest[i]) {
			node.Count = node.Count*10 + int(rest[i]-'0')
			node.HasCount = true
			i++
		}
		rest = strings.TrimSpace(rest[i:])
		if rest == "" {
			return newParseError(arg, "E475: invalid argument", 0)
		}
		node.RawArg = word
		node.Name = rest
	case "here":
		if strings.TrimSpace(rest) != "" {
			return newParseError(arg, "E488: trailing characters", len(word))
		}
		node.RawArg = word
	default:
		return newParseError(arg, "E475: invalid argument", 0)
	}
	return nil
}

// parseProfile parses :profile/:profdel's subcommand and argument.
func parseProfile(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	word, rest, _ := strings.Cut(arg, " ")
	rest = strings.TrimSpace(rest)
	switch word {
	case "start", "func", "file":
		if rest == "" {
			return newParseError(arg, "E471: argument required", len(word))
		}
		node.RawArg = word
		node.Name = rest
	case "pause", "continue", "dump", "stop":
		if rest != "" {
			return newParseError(arg, "E488: trailing characters", len(word))
		}
		node.RawArg = word
	default:
		return newParseError(arg, "E475: invalid argument", 0)
	}
	return nil
}

// parseLanguage parses an optional messages/ctype/time keyword and the
// locale name.
func parseLanguage(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	word, rest, _ := strings.Cut(arg, " ")
	switch word {
	case "messages", "ctype", "time":
		node.RawArg = word
		node.Name = strings.TrimSpace(rest)
	default:
		node.Name = arg
	}
	return nil
}

// parseBehave accepts exactly mswin or xterm.
func parseBehave(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg != "mswin" && arg != "xterm" {
		return newParseError(arg, "E475: invalid argument", 0)
	}
	node.RawArg = arg
	return nil
}

// parseFiletype parses the optional plugin/indent words and the
// on/off/detect state.
func parseFiletype(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	rest := arg
	for {
		word, tail, _ := strings.Cut(rest, " ")
		switch word {
		case "plugin", "indent":
			node.RawArg += word + " "
			rest = strings.TrimSpace(tail)
			continue
		case "on", "off", "detect":
			if strings.TrimSpace(tail) != "" {
				return newParseError(arg, "E488: trailing characters", 0)
			}
			node.RawArg += word
			return nil
		}
		return newParseError(arg, "E475: invalid argument", 0)
	}
}

// parseTwoNumbers parses :winpos/:winsize's two coordinates. :winpos
// with no argument just reports the position.
func parseTwoNumbers(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return newParseError(arg, "E466: :winpos requires two number arguments", 0)
	}
	for _, f := range fields {
		n := 0
		for i := 0; i < len(f); i++ {
			if !isDigit(f[i]) {
				return newParseError(arg, "E466: :winpos requires two number arguments", 0)
			}
			n = n*10 + int(f[i]-'0')
		}
		node.Numbers = append(node.Numbers, n)
	}
	return nil
}

// parseRegexRest treats the whole argument as a regex (:helpgrep).
func parseRegexRest(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return newParseError(arg, "E471: argument required", 0)
	}
	node.Regex = Regex{Source: arg}
	return nil
}

// parseOptionalRegex parses :open's optional /pattern/.
func parseOptionalRegex(ps *parseState, node *CommandNode, arg string) error {
	i := skipWhite(arg, 0)
	if i >= len(arg) {
		return nil
	}
	if arg[i] == '/' {
		rx, end, ok := getRegex(arg, i+1, '/')
		if !ok {
			return newParseError(arg, "E682: invalid search pattern or delimiter", i)
		}
		node.Regex = rx
		i = end
	}
	node.RawArg = strings.TrimSpace(arg[i:])
	return nil
}

// parseSyntime accepts on/off/clear/report.
func parseSyntime(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	switch arg {
	case "on", "off", "clear", "report":
		node.RawArg = arg
		return nil
	}
	return newParseError(arg, "E475: invalid argument", 0)
}

// parseDestAddress parses :copy/:move's destination address.
func parseDestAddress(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return newParseError(arg, "E14: invalid address", 0)
	}
	a, end, ok := parseAddress(arg, 0)
	if !ok {
		return newParseError(arg, "E14: invalid address", 0)
	}
	a, end, ok = parseAddressFollowups(a, arg, end)
	if !ok || skipWhite(arg, end) != len(arg) {
		return newParseError(arg, "E488: trailing characters", end)
	}
	node.DestAddr = a
	node.HasDest = true
	return nil
}

// parseAt parses :@'s register character: a named register, = for the
// expression register, or @ meaning repeat the last one.
func parseAt(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		// The unnamed-register form :@" was already consumed by the
		// dispatcher before comment stripping.
		if node.Reg.Name != 0 {
			return nil
		}
		return newParseError(arg, "E471: argument required", 0)
	}
	c := arg[0]
	if c != '@' && c != '=' && !isRegisterName(c) && !isDigit(c) && c != ':' && c != '.' {
		return newParseError(arg, "E488: trailing characters", 0)
	}
	node.Reg.Name = c
	if c == '=' {
		rest := strings.TrimSpace(arg[1:])
		if rest != "" {
			e, _, err := ParseExpr(rest)
			if err != nil {
				return err
			}
			node.Reg.Expr = e
		}
	}
	return nil
}

// parseDigraphs validates :digraphs' {char}{char} {number} triples; the
// raw text is kept for printing.
func parseDigraphs(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	node.RawArg = arg
	if arg == "" {
		return nil
	}
	fields := strings.Fields(arg)
	if len(fields)%2 != 0 {
		return newParseError(arg, "E39: number expected", 0)
	}
	for i := 1; i < len(fields); i += 2 {
		for j := 0; j < len(fields[i]); j++ {
			if !isDigit(fields[i][j]) {
				return newParseError(arg, "E39: number expected", 0)
			}
		}
	}
	return nil
}
