package viml

import "strings"

// cmdName pairs a built-in command's full name with its type, one row
// of the built-in name table. findCommand
// matches the longest name for which the typed text is a valid
// abbreviation (VimL lets ":e" mean ":edit", ":fu" mean ":function", etc).
type cmdName struct {
	name string
	typ  CommandType
	// minLen is the shortest unambiguous abbreviation length; 0 means the
	// full name is required (no abbreviation allowed).
	minLen int
}

// builtinCommands lists the subset of Ex commands this module builds a
// typed AST for; names not found here parse as CmdUnknown with their
// argument text kept verbatim.
var builtinCommands = []cmdName{
	{"echo", CmdEcho, 2},
	{"echon", CmdEchon, 5},
	{"echomsg", CmdEchomsg, 5},
	{"echoerr", CmdEchoerr, 5},
	{"execute", CmdExecute, 3},

	{"let", CmdLet, 3},
	{"unlet", CmdUnlet, 3},
	{"undo", CmdUndo, 1},
	{"redo", CmdRedo, 3},
	{"lockvar", CmdLockvar, 5},
	{"unlockvar", CmdUnlockvar, 7},
	{"const", CmdConst, 4},

	{"if", CmdIf, 2},
	{"elseif", CmdElseif, 5},
	{"else", CmdElse, 4},
	{"endif", CmdEndif, 3},

	{"while", CmdWhile, 2},
	{"endwhile", CmdEndwhile, 4},

	{"for", CmdFor, 3},
	{"endfor", CmdEndfor, 4},

	{"try", CmdTry, 3},
	{"catch", CmdCatch, 3},
	{"finally", CmdFinally, 4},
	{"endtry", CmdEndtry, 4},

	{"function", CmdFunction, 2},
	{"endfunction", CmdEndfunction, 4},
	{"return", CmdReturn, 4},
	{"call", CmdCall, 3},
	{"delfunction", CmdDelfunction, 4},

	{"break", CmdBreak, 3},
	{"continue", CmdContinue, 3},

	{"map", CmdMap, 3},
	{"noremap", CmdNoremap, 2},
	{"unmap", CmdUnmap, 3},
	{"mapclear", CmdMapclear, 4},

	{"menu", CmdMenu, 3},
	{"unmenu", CmdUnmenu, 4},

	{"autocmd", CmdAutocmd, 2},
	{"augroup", CmdAugroup, 3},

	{"command", CmdCommand, 3},
	{"delcommand", CmdDelcommand, 4},

	{"substitute", CmdSubstitute, 1},
	{"set", CmdSet, 2},
	{"highlight", CmdHighlight, 2},

	{"delete", CmdDelete, 1},
	{"python", CmdPython, 2},
	{"print", CmdPrint, 1},

	{"silent", CmdSilent, 3},
	{"unsilent", CmdUnsilent, 5},
	{"verbose", CmdVerbose, 4},
	{"vertical", CmdVertical, 4},
	{"tab", CmdTab, 3},
	{"topleft", CmdTopleft, 2},
	{"botright", CmdBotright, 2},
	{"aboveleft", CmdAboveleft, 3},
	{"belowright", CmdBelowright, 3},
	{"leftabove", CmdLeftabove, 5},
	{"rightbelow", CmdRightbelow, 6},
	{"keepalt", CmdKeepalt, 5},
	{"keepjumps", CmdKeepjumps, 5},
	{"keepmarks", CmdKeepmarks, 5},
	{"keeppatterns", CmdKeeppatterns, 5},
	{"lockmarks", CmdLockmarks, 3},
	{"noautocmd", CmdNoautocmd, 3},
	{"hide", CmdHide, 3},
	{"sandbox", CmdSandbox, 3},

	{"edit", CmdEdit, 1},
	{"new", CmdNew, 3},
	{"split", CmdSplit, 2},
	{"vsplit", CmdVsplit, 2},
	{"tabedit", CmdTabedit, 4},
	{"read", CmdRead, 1},
	{"write", CmdWrite, 1},
	{"saveas", CmdSaveas, 3},
	{"source", CmdSource, 2},
	{"cd", CmdCd, 2},
	{"lcd", CmdLcd, 3},
	{"next", CmdNext, 1},
	{"previous", CmdPrevious, 4},
	{"args", CmdArgs, 2},
	{"argadd", CmdArgadd, 4},

	{"argdo", CmdArgdo, 4},
	{"bufdo", CmdBufdo, 4},
	{"windo", CmdWindo, 5},
	{"tabdo", CmdTabdo, 4},

	{"append", CmdAppend, 1},
	{"insert", CmdInsert, 1},
	{"change", CmdChange, 1},

	{"global", CmdGlobal, 1},
	{"vglobal", CmdVglobal, 1},
	{"vimgrep", CmdVimgrep, 3},
	{"normal", CmdNormal, 4},
	{"wincmd", CmdWincmd, 4},
	{"z", CmdZ, 1},
	{"sort", CmdSort, 3},
	{"marks", CmdMarks, 5},
	{"delmarks", CmdDelmarks, 4},
	{"history", CmdHistory, 3},
	{"retab", CmdRetab, 3},
	{"resize", CmdResize, 3},
	{"redir", CmdRedir, 4},
	{"sleep", CmdSleep, 2},
	{"mark", CmdMark, 2},
	{"k", CmdMark, 1},
	{"match", CmdMatch, 3},
	{"join", CmdJoin, 1},
	{"yank", CmdYank, 1},
	{"put", CmdPut, 2},
	{"copy", CmdCopy, 2},
	{"t", CmdCopy, 1},
	{"move", CmdMove, 1},
	{"help", CmdHelp, 1},
	{"helpgrep", CmdHelpgrep, 5},
	{"language", CmdLanguage, 3},
	{"behave", CmdBehave, 2},
	{"filetype", CmdFiletype, 5},
	{"digraphs", CmdDigraphs, 3},
	{"display", CmdDisplay, 2},
	{"later", CmdLater, 3},
	{"earlier", CmdEarlier, 2},
	{"breakadd", CmdBreakadd, 6},
	{"breakdel", CmdBreakdel, 6},
	{"profile", CmdProfile, 4},
	{"profdel", CmdProfdel, 5},
	{"winpos", CmdWinpos, 4},
	{"winsize", CmdWinsize, 3},
	{"syntime", CmdSyntime, 5},
	{"scriptnames", CmdScriptnames, 3},
	{"open", CmdOpen, 1},
	{"gui", CmdGui, 2},
	{"popup", CmdPopup, 4},
	{"make", CmdMake, 3},
	{"quit", CmdQuit, 1},
}

// nonAlphaCommands maps the single-byte commands that findCommand
// recognises as a dedicated entry rather than via a word scan. :& and
// :~ resolve to CmdSubstitute and share its argument grammar.
var nonAlphaCommands = map[byte]CommandType{
	'@': CmdAt,
	'*': CmdStar,
	'!': CmdBang,
	'=': CmdEqual,
	'>': CmdShiftRight,
	'<': CmdShiftLeft,
	'&': CmdSubstitute,
	'~': CmdSubstitute,
	'#': CmdPrint,
}

// sIsSubstitute reports whether a word beginning with 's' should resolve
// straight to :substitute rather than through the regular prefix table:
// :scriptnames/:scriptversion/:scriptencoding are carved
// out of the "sc" case, and a handful of other second-letter combinations
// are reserved for commands like :set/:sort/:sign/:silent/:source that
// would otherwise collide with the bare ":s" abbreviation.
func sIsSubstitute(word string) bool {
	if word == "" || word[0] != 's' {
		return false
	}
	if len(word) == 1 {
		return true
	}
	switch word[1] {
	case 'c':
		if strings.HasPrefix("scriptnames", word) || strings.HasPrefix("scriptversion", word) || strings.HasPrefix("scriptencoding", word) {
			return false
		}
		return true
	case 'g':
		return true
	case 'i':
		return len(word) < 3 || (word[2] != 'l' && word[2] != 'g')
	case 'I':
		return true
	case 'r':
		return len(word) < 3 || word[2] != 'e'
	}
	return false
}

// findCommand classifies the command name starting at i: it returns the
// matched type, the name text actually consumed, and the offset just
// past the name. A name beginning with an uppercase letter that matches
// no built-in is treated as a user command; anything else that matches no
// built-in is CmdUnknown.
func findCommand(s string, i int) (typ CommandType, name string, end int) {
	start := i
	if i >= len(s) {
		return CmdMissing, "", i
	}
	if nonAlphaTyp, ok := nonAlphaCommands[s[i]]; ok {
		return nonAlphaTyp, s[i : i+1], i + 1
	}

	j := i
	for j < len(s) && isWordChar(s[j]) {
		j++
	}
	word := s[start:j]
	if word == "" {
		return CmdMissing, "", i
	}

	if sIsSubstitute(word) {
		return CmdSubstitute, word, j
	}

	// "py"-prefixed commands allow a trailing version digit the regular
	// prefix table doesn't otherwise expect (:py3, :python3): strip it
	// before matching against the table, then hand back the full word
	// (digits included) as the consumed name.
	matchWord := word
	if strings.HasPrefix(word, "py") {
		k := len(word)
		for k > 2 && isDigit(word[k-1]) {
			k--
		}
		matchWord = word[:k]
	}

	best := -1
	for idx, c := range builtinCommands {
		if !strings.HasPrefix(c.name, matchWord) {
			continue
		}
		min := c.minLen
		if min == 0 {
			min = len(c.name)
		}
		if len(matchWord) < min {
			continue
		}
		if best == -1 || len(builtinCommands[idx].name) > len(builtinCommands[best].name) {
			best = idx
		}
	}
	if best >= 0 {
		return builtinCommands[best].typ, word, j
	}
	// "d" accepts a trailing l/p flag fused into the name (:dl, :dp)
	// rather than being a prefix of a longer built-in like :delfunction.
	if len(word) == 2 && word[0] == 'd' && (word[1] == 'l' || word[1] == 'p') {
		return CmdDelete, "d", start + 1
	}
	if word[0] >= 'A' && word[0] <= 'Z' {
		return CmdUser, word, j
	}
	return CmdUnknown, word, j
}

// barTerminatesArg reports whether an unescaped '|' ends this command's
// argument. NOTRLCOM commands without TRLBAR (:normal, :global's
// sub-command, shell-outs, the *do family) swallow bars; everything
// else splits on them.
func barTerminatesArg(flags CmdFlag) bool {
	return flags&FlagNotrlcom == 0 || flags&FlagTrlbar != 0
}

// getCmdArg extracts a command's argument string starting at i: up to an
// unescaped '|' (command separator, when barTerminatesArg says so), end
// of line, or (unless the command has the NOTRLCOM flag) an unescaped
// '"' comment starter. Returns the argument text with Ctrl-V (0x16) and
// backslash-bar escapes resolved, plus the list of byte offsets elided
// during that resolution (skips), so later argument parsers can map
// their own offsets back to original source columns. LITERAL commands
// (:normal) get the rest of the line verbatim with no escape or comment
// processing at all.
func getCmdArg(s string, i int, flags CmdFlag) (arg string, skips []int, end int) {
	if flags&FlagLiteral != 0 {
		return s[i:], nil, len(s)
	}
	useCtrlV := flags&FlagUsectrlv != 0
	noTrailingComment := flags&FlagNotrlcom != 0
	barSplits := barTerminatesArg(flags)
	var b strings.Builder
	start := i
	var prev byte
	for i < len(s) {
		c := s[i]
		switch {
		case c == 0x16: // <C-v>
			if useCtrlV {
				b.WriteByte(c)
				if i+1 < len(s) {
					b.WriteByte(s[i+1])
				}
				i += 2
				continue
			}
			skips = append(skips, i-start)
			i++
			if i < len(s) {
				prev = s[i]
				b.WriteByte(s[i])
				i++
			}
			continue
		case c == '\\' && i+1 < len(s) && s[i+1] == '|':
			skips = append(skips, i-start)
			b.WriteByte('|')
			prev = '|'
			i += 2
			continue
		case c == '|':
			if !barSplits {
				b.WriteByte(c)
				prev = c
				i++
				continue
			}
			return trimTrailing(b.String(), noTrailingComment), skips, i
		case c == '"' && !noTrailingComment && prev != '@':
			// @" is a register name, not a comment starter (:redir @").
			return trimTrailing(b.String(), noTrailingComment), skips, i
		default:
			b.WriteByte(c)
			prev = c
			i++
		}
	}
	return trimTrailing(b.String(), noTrailingComment), skips, i
}

// trimTrailing strips trailing whitespace unless the command keeps it
// (NOTRLCOM).
func trimTrailing(s string, keep bool) string {
	if keep {
		return s
	}
	i := len(s)
	for i > 0 && isWhite(s[i-1]) {
		i--
	}
	return s[:i]
}
