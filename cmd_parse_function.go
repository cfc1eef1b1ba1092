package viml

import "strings"

// parseFunction parses :function's optional /regex/ (list functions by
// pattern), otherwise an LHS naming the function (rejecting a lowercase
// unscoped name), an optional (a, b, ..., ...) argument list with
// duplicate detection and the reserved names "firstline"/"lastline", and
// trailing range/dict/abort keywords.
func parseFunction(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil // :function with no argument lists all functions
	}
	if arg[0] == '/' {
		rx, end, ok := getRegex(arg, 1, '/')
		if !ok {
			return newParseError(arg, "E498: missing closing delimiter for :function pattern", len(arg))
		}
		node.Regex = rx
		node.RawArg = strings.TrimSpace(arg[end:])
		return nil
	}
	name, end, err := ParseExprNoFunc(arg)
	if err != nil {
		return err
	}
	if name.Op == OpSimpleVariableName && !strings.Contains(name.Str, ":") && len(name.Str) > 0 &&
		name.Str[0] >= 'a' && name.Str[0] <= 'z' {
		return newParseError(arg, "E128: function name must start with a capital or contain a colon", 0)
	}
	node.FuncName = name
	i := skipWhite(arg, end)
	if i >= len(arg) || arg[i] != '(' {
		node.RawArg = strings.TrimSpace(arg[i:])
		return nil
	}
	i++
	seen := map[string]bool{}
	for {
		i = skipWhite(arg, i)
		if i < len(arg) && arg[i] == ')' {
			i++
			break
		}
		if strings.HasPrefix(arg[i:], "...") {
			node.FuncVararg = true
			i += 3
			i = skipWhite(arg, i)
			if i < len(arg) && arg[i] == ')' {
				i++
			}
			break
		}
		start := i
		for i < len(arg) && isWordChar(arg[i]) {
			i++
		}
		pname := arg[start:i]
		if pname == "" {
			return newParseError(arg, "E125: illegal argument name", i)
		}
		if pname == "firstline" || pname == "lastline" {
			return newParseError(arg, "E125: illegal argument name: "+pname, start)
		}
		if seen[pname] {
			return newParseError(arg, "E853: duplicate argument name: "+pname, start)
		}
		seen[pname] = true
		node.FuncArgs = append(node.FuncArgs, pname)
		i = skipWhite(arg, i)
		if i < len(arg) && arg[i] == ',' {
			i++
			continue
		}
		if i < len(arg) && arg[i] == ')' {
			i++
			break
		}
		return newParseError(arg, "E124: missing ')'", i)
	}
	for {
		i = skipWhite(arg, i)
		switch {
		case strings.HasPrefix(arg[i:], "range"):
			node.FuncRange = true
			i += len("range")
		case strings.HasPrefix(arg[i:], "dict"):
			node.FuncDict = true
			i += len("dict")
		case strings.HasPrefix(arg[i:], "abort"):
			node.FuncAbort = true
			i += len("abort")
		default:
			node.RawArg = strings.TrimSpace(arg[i:])
			return nil
		}
	}
}
