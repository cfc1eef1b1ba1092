package viml

import "strings"

// parseCommand parses :command's -bang/-buffer/-bar/-register/-nargs=*/
// -range[=N]/-count[=N]/-complete=TYPE[,ARG] flags, the (uppercase)
// user-command name, and its body.
func parseCommand(ps *parseState, node *CommandNode, arg string) error {
	i := 0
	for {
		i = skipWhite(arg, i)
		if i >= len(arg) || arg[i] != '-' {
			break
		}
		end := i + 1
		for end < len(arg) && arg[end] != '=' && !isWhite(arg[end]) {
			end++
		}
		flag := arg[i+1 : end]
		var value string
		if end < len(arg) && arg[end] == '=' {
			vstart := end + 1
			vend := vstart
			for vend < len(arg) && !isWhite(arg[vend]) {
				vend++
			}
			value = arg[vstart:vend]
			end = vend
		}
		switch flag {
		case "nargs":
			node.CommandNargs = value
		case "complete":
			node.CommandComplete = value
		case "range", "count", "bang", "buffer", "bar", "register":
		default:
			return newParseError(arg, "E181: invalid attribute", i)
		}
		node.CommandAttrs = append(node.CommandAttrs, arg[i:end])
		i = end
	}
	i = skipWhite(arg, i)
	nameEnd := i
	for nameEnd < len(arg) && isWordChar(arg[nameEnd]) {
		nameEnd++
	}
	node.CommandName = arg[i:nameEnd]
	i = skipWhite(arg, nameEnd)
	node.CommandBody = strings.TrimSpace(arg[i:])
	return nil
}
