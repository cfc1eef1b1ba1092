package viml

import "strings"

// parseAutocmd parses :autocmd's optional group name, comma-separated
// event list, pattern list, optional "nested", and optional command body.
// "nested" is only consumed as a flag when followed by a non-empty
// command body; otherwise it would be ambiguous with a literal pattern
// named "nested".
func parseAutocmd(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	i := 0
	fields := splitFirstField(arg, i)
	if looksLikeGroupName(fields) && !looksLikeEventList(fields) {
		node.AutocmdGroup = fields
		i += len(fields)
		i = skipWhite(arg, i)
	}
	evEnd := i
	for evEnd < len(arg) && !isWhite(arg[evEnd]) {
		evEnd++
	}
	events := arg[i:evEnd]
	if events != "" {
		node.AutocmdEvents = strings.Split(events, ",")
	}
	i = skipWhite(arg, evEnd)
	patEnd := i
	for patEnd < len(arg) && !isWhite(arg[patEnd]) {
		patEnd++
	}
	if patEnd > i {
		glob, _, err := parseFiles(arg, i)
		if err != nil {
			return err
		}
		node.AutocmdPattern = glob
	}
	i = skipWhite(arg, patEnd)
	rest := arg[i:]
	if strings.HasPrefix(rest, "nested") {
		after := rest[len("nested"):]
		trimmed := strings.TrimLeft(after, " \t")
		if trimmed != "" {
			node.AutocmdNested = true
			rest = trimmed
		}
	}
	node.CommandBody = rest
	return nil
}

func splitFirstField(s string, i int) string {
	end := i
	for end < len(s) && !isWhite(s[end]) {
		end++
	}
	return s[i:end]
}

func looksLikeGroupName(field string) bool {
	return field != "" && field != "*"
}

func looksLikeEventList(field string) bool {
	for _, ev := range knownAutocmdEvents {
		if strings.EqualFold(field, ev) {
			return true
		}
		for _, part := range strings.Split(field, ",") {
			if strings.EqualFold(part, ev) {
				return true
			}
		}
	}
	return field == "*"
}

// knownAutocmdEvents is a representative subset of Vim's autocommand
// event names, enough to disambiguate a leading group name from a bare
// event list during parsing.
var knownAutocmdEvents = []string{
	"BufNewFile", "BufRead", "BufReadPost", "BufWrite", "BufWritePost",
	"BufEnter", "BufLeave", "BufDelete", "VimEnter", "VimLeave",
	"FileType", "InsertEnter", "InsertLeave", "CursorMoved", "CursorHold",
	"TextChanged", "User",
}
