package viml

import "strings"

var setOperators = []string{"+=", "-=", "^=", "&vim", "&vi", "<", "&", "?", "!", "="}

// parseSet parses :set's sequence of option operations, each a name
// followed by an operator and (for value-taking operators) a value.
func parseSet(ps *parseState, node *CommandNode, arg string) error {
	i := 0
	for {
		i = skipWhite(arg, i)
		if i >= len(arg) {
			break
		}
		nameStart := i
		for i < len(arg) && (isWordChar(arg[i]) || arg[i] == '-') {
			i++
		}
		if i < len(arg) && arg[i] == ':' && i+1 < len(arg) && arg[i+1] == '_' {
			// t_XX-style terminal option: already captured by isWordChar
			// loop above in the common case; nothing further needed.
		}
		name := arg[nameStart:i]
		if name == "" {
			return newParseError(arg, "E518: unknown option", i)
		}
		op := ""
		for _, candidate := range setOperators {
			if strings.HasPrefix(arg[i:], candidate) {
				op = candidate
				break
			}
		}
		i += len(op)
		var value string
		if op == "=" || op == "+=" || op == "-=" || op == "^=" {
			vstart := i
			for i < len(arg) {
				if arg[i] == '\\' && i+1 < len(arg) {
					i += 2
					continue
				}
				if isWhite(arg[i]) {
					break
				}
				i++
			}
			value = arg[vstart:i]
		}
		node.SetOps = append(node.SetOps, SetOption{Name: name, Op: op, Value: value})
	}
	return nil
}

// parseHighlight parses :highlight's group name followed by key=value
// attribute assignments (term=, cterm=, gui=, ctermfg=, guibg=, ...).
// Each value is classified by its form alone, whatever its key: all
// digits is HLColorNumber, a leading '#' is HLColorRGB, anything else
// (NONE, a color name, a keyword list like bold,underline) is HLColorName.
func parseHighlight(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	i := 0
	end := i
	for end < len(arg) && !isWhite(arg[end]) {
		end++
	}
	node.HighlightGroup = arg[i:end]
	i = skipWhite(arg, end)
	for i < len(arg) {
		keyStart := i
		for i < len(arg) && arg[i] != '=' && !isWhite(arg[i]) {
			i++
		}
		key := arg[keyStart:i]
		if i >= len(arg) || arg[i] != '=' {
			break
		}
		i++
		valStart := i
		for i < len(arg) && !isWhite(arg[i]) {
			i++
		}
		val := arg[valStart:i]
		node.HighlightAttrs = append(node.HighlightAttrs, HighlightAttrDef{
			Key:   key,
			Color: parseHighlightColor(val),
		})
		i = skipWhite(arg, i)
	}
	return nil
}

func parseHighlightColor(val string) HighlightColor {
	if len(val) > 0 && isDigit(val[0]) {
		n := 0
		for _, b := range val {
			if b < '0' || b > '9' {
				return HighlightColor{Kind: HLColorName, Name: val}
			}
			n = n*10 + int(b-'0')
		}
		return HighlightColor{Kind: HLColorNumber, Num: n}
	}
	if strings.HasPrefix(val, "#") {
		return HighlightColor{Kind: HLColorRGB, Name: val}
	}
	return HighlightColor{Kind: HLColorName, Name: val}
}
