package viml

import "strings"

// parseOptArgs consumes leading ++opt arguments (++bin, ++nobin, ++edit,
// ++enc=..., ++ff=.../++fileformat=..., ++bad=...) from arg, filling the
// node's OptFlags/Enc/FF/BadChar slots. Returns the offset past the last
// consumed option.
func parseOptArgs(node *CommandNode, arg string, i int) (int, error) {
	for {
		i = skipWhite(arg, i)
		if !strings.HasPrefix(arg[i:], "++") {
			return i, nil
		}
		j := i + 2
		end := j
		for end < len(arg) && !isWhite(arg[end]) {
			end++
		}
		opt := arg[j:end]
		name, value, hasValue := strings.Cut(opt, "=")
		switch name {
		case "bin", "binary":
			node.OptFlags |= OptBin
		case "nobin", "nobinary":
			node.OptFlags |= OptNobin
		case "edit":
			node.OptFlags |= OptEdit
		case "enc", "encoding":
			if !hasValue {
				return i, newParseError(arg, "E474: ++enc requires a value", j)
			}
			node.OptFlags |= OptEnc
			node.Enc = value
		case "ff", "fileformat":
			if !hasValue {
				return i, newParseError(arg, "E474: ++ff requires a value", j)
			}
			node.OptFlags |= OptFF
			node.FF = value
		case "bad":
			if !hasValue {
				return i, newParseError(arg, "E474: ++bad requires a value", j)
			}
			node.OptFlags |= OptBad
			node.BadChar = value
		default:
			return i, newParseError(arg, "E474: invalid ++opt argument", j)
		}
		i = end
	}
}

// cutEditCmd splits a leading +cmd argument (:edit +/pat file) off arg,
// returning the command text (without the '+') and the offset past it.
// Whitespace inside the command is reachable only via backslash escapes;
// the escapes are peeled here so the text parses as a plain command.
func cutEditCmd(arg string, i int) (cmd string, end int) {
	if i >= len(arg) || arg[i] != '+' {
		return "", i
	}
	i++
	var b strings.Builder
	for i < len(arg) && !isWhite(arg[i]) {
		if arg[i] == '\\' && i+1 < len(arg) {
			b.WriteByte(arg[i+1])
			i += 2
			continue
		}
		b.WriteByte(arg[i])
		i++
	}
	return b.String(), i
}

// isRegisterName reports whether b can name a register in a command
// position (:delete x). Digit registers are excluded here because a bare
// digit after these commands is a count, not a register.
func isRegisterName(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		b == '"' || b == '-' || b == '*' || b == '+' || b == '_' || b == '/' || b == '='
}

// parseRegisterArg consumes an optional register name from arg. The '='
// register additionally takes an expression covering the rest of the
// argument (:put =expr).
func parseRegisterArg(node *CommandNode, arg string, i int) (int, error) {
	i = skipWhite(arg, i)
	if i >= len(arg) || !isRegisterName(arg[i]) {
		return i, nil
	}
	// A register must stand alone: "x 3" names register x, but "xyz" is
	// some other argument entirely.
	if arg[i] != '=' && i+1 < len(arg) && !isWhite(arg[i+1]) {
		return i, nil
	}
	node.Reg.Name = arg[i]
	i++
	if node.Reg.Name == '=' {
		rest := strings.TrimSpace(arg[i:])
		if rest != "" {
			e, _, err := ParseExpr(rest)
			if err != nil {
				return i, err
			}
			node.Reg.Expr = e
		}
		return len(arg), nil
	}
	return i, nil
}

// parseCountArg consumes an optional trailing count.
func parseCountArg(node *CommandNode, arg string, i int) int {
	i = skipWhite(arg, i)
	if i >= len(arg) || !isDigit(arg[i]) {
		return i
	}
	n := 0
	for i < len(arg) && isDigit(arg[i]) {
		n = n*10 + int(arg[i]-'0')
		i++
	}
	node.HasCount = true
	node.Count = n
	return i
}

// parseExFlagsArg consumes trailing l/#/p print flags.
func parseExFlagsArg(node *CommandNode, arg string, i int) int {
	for {
		i = skipWhite(arg, i)
		if i >= len(arg) {
			return i
		}
		switch arg[i] {
		case 'l':
			node.ExFlags |= FlagExList
		case '#':
			node.ExFlags |= FlagExLnr
		case 'p':
			node.ExFlags |= FlagExPrint
		default:
			return i
		}
		i++
	}
}

// parseSharedArgs runs the dispatcher-level argument passes a command's
// flags ask for (++opt, register, count, trailing ex-flags) and returns
// the remaining argument text for the command's own parser. The parse
// order matches the source order in the argument string:
// :delete x 3 p, :edit ++enc=utf-8 +/pat file.
func parseSharedArgs(node *CommandNode, flags CmdFlag, arg string) (string, error) {
	i := 0
	var err error
	if flags&FlagArgopt != 0 {
		if i, err = parseOptArgs(node, arg, i); err != nil {
			return "", err
		}
	}
	if flags&FlagRegstr != 0 {
		if i, err = parseRegisterArg(node, arg, i); err != nil {
			return "", err
		}
	}
	if flags&FlagCount != 0 {
		i = parseCountArg(node, arg, i)
	}
	if flags&FlagExflags != 0 {
		i = parseExFlagsArg(node, arg, i)
	}
	return strings.TrimLeft(arg[i:], " \t"), nil
}

// parseXFileArg parses a file command's glob arguments
// into node.Glob. An empty argument is fine: :write with no file writes
// the current one.
func parseXFileArg(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	g, _, err := parseFiles(arg, 0)
	if err != nil {
		return err
	}
	node.Glob = g
	return nil
}
