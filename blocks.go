package viml

import (
	"fmt"
	"strings"
)

// LineGetter fetches the next source line on demand, so the parser never
// does file I/O itself. ok is false at end of input.
type LineGetter func() (line string, ok bool)

// Lines wraps a fixed slice of lines as a LineGetter, the common case for
// tests and for scripts already held in memory.
func Lines(lines []string) LineGetter {
	i := 0
	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++
		return line, true
	}
}

// maxNestBlocks bounds block nesting depth and the depth of stacked
// modifiers. An opener beyond it on the block stack records a "too many
// nested blocks" BlockError and is kept as a plain command whose body is
// not nested under it (no error node is added to the tree); a modifier
// beyond it is replaced by a CmdSyntaxError node.
const maxNestBlocks = 63

type blockRule struct {
	openers  []CommandType
	notAfter CommandType
	isOpener bool // pushes a brand new frame (If, While, For, Try, Function)
	isSep    bool // closes the current frame and opens a sibling body (Elseif, Else, Catch, Finally)
	isCloser bool // closes the current frame with no sibling body (Endif, Endwhile, ...)
}

var blockRules = map[CommandType]blockRule{
	CmdIf:       {isOpener: true},
	CmdWhile:    {isOpener: true},
	CmdFor:      {isOpener: true},
	CmdTry:      {isOpener: true},
	CmdFunction: {isOpener: true},

	CmdElseif: {openers: []CommandType{CmdIf, CmdElseif}, notAfter: CmdElse, isSep: true},
	CmdElse:   {openers: []CommandType{CmdIf, CmdElseif}, notAfter: CmdElse, isSep: true},
	CmdEndif:  {openers: []CommandType{CmdIf, CmdElseif, CmdElse}, isCloser: true},

	CmdEndwhile: {openers: []CommandType{CmdWhile}, isCloser: true},
	CmdEndfor:   {openers: []CommandType{CmdFor}, isCloser: true},

	CmdCatch:   {openers: []CommandType{CmdTry, CmdCatch}, notAfter: CmdFinally, isSep: true},
	CmdFinally: {openers: []CommandType{CmdTry, CmdCatch}, notAfter: CmdFinally, isSep: true},
	CmdEndtry:  {openers: []CommandType{CmdTry, CmdCatch, CmdFinally}, isCloser: true},

	CmdEndfunction: {openers: []CommandType{CmdFunction}, isCloser: true},
}

// blockFrame is one level of the open-block stack: node is nil at the
// root (no enclosing command), else the opener or most recent separator
// whose Children this frame is building.
type blockFrame struct {
	node     *CommandNode
	lastType CommandType
	head     *CommandNode
	tail     *CommandNode
}

func (f *blockFrame) append(c *CommandNode) {
	if f.tail == nil {
		f.head = c
	} else {
		f.tail.Next = c
		c.Prev = f.tail
	}
	f.tail = c
	if f.node != nil {
		f.node.Children = f.head
	}
}

// blockSequenceParser drives line fetching and maintains the open-block
// stack.
type blockSequenceParser struct {
	ps       *parseState
	get      LineGetter
	lnr      uint32
	stack    []*blockFrame
	errors   []error
	modDepth int
}

// ParseCommands parses an entire script fetched from get into a single
// AST whose root is the first top-level command (or nil for an empty
// script).
func ParseCommands(opts CommandParserOptions, get LineGetter) (*CommandNode, error) {
	bp := &blockSequenceParser{
		ps:    &parseState{Options: opts},
		get:   get,
		stack: []*blockFrame{{}},
	}
	bp.ps.get = get
	bp.ps.lnr = &bp.lnr
	for {
		line, ok := bp.get()
		if !ok {
			break
		}
		bp.lnr++
		// A single physical line may hold several '|'-separated commands
		// ("for i in range(10) | echo i | endfor"); parseOneCmd consumes
		// one at a time and reports how much of the line it left
		// unconsumed.
		rest := line
		for {
			c, tail := bp.parseOneCmd(rest)
			if c != nil {
				bp.handle(c)
			}
			if tail == "" {
				break
			}
			rest = tail
		}
	}
	bp.closeRemaining()
	root := bp.stack[0].head
	if len(bp.errors) > 0 {
		return root, bp.errors[0]
	}
	return root, nil
}

func (bp *blockSequenceParser) top() *blockFrame { return bp.stack[len(bp.stack)-1] }

func (bp *blockSequenceParser) handle(c *CommandNode) {
	rule, known := blockRules[c.Type]
	if known && (rule.isSep || rule.isCloser) {
		depth := bp.findMatchingFrame(rule)
		if depth < 0 {
			bp.errors = append(bp.errors, &BlockError{
				Opener:  "",
				Closer:  fmt.Sprint(c.Type),
				Message: "no matching block opener",
				Pos:     c.Position,
			})
			bp.top().append(c)
			return
		}
		for len(bp.stack)-1 > depth {
			bp.popUnclosed()
		}
		if rule.notAfter != CmdMissing && bp.top().lastType == rule.notAfter {
			bp.errors = append(bp.errors, &BlockError{
				Message: "unexpected block separator after its terminal form",
				Pos:     c.Position,
			})
		}
		// Pop the frame being closed; c is a sibling of its opener, one
		// level up.
		bp.stack = bp.stack[:len(bp.stack)-1]
		bp.top().append(c)
		if rule.isSep {
			// bp.stack[0] is the root frame, so the new frame's depth is
			// len(bp.stack).
			if len(bp.stack) > maxNestBlocks {
				bp.errors = append(bp.errors, &BlockError{Message: "too many nested blocks", Pos: c.Position})
				return
			}
			bp.stack = append(bp.stack, &blockFrame{node: c, lastType: c.Type})
		}
		return
	}
	bp.top().append(c)
	if known && rule.isOpener {
		if len(bp.stack) > maxNestBlocks {
			bp.errors = append(bp.errors, &BlockError{Message: "too many nested blocks", Pos: c.Position})
			return
		}
		bp.stack = append(bp.stack, &blockFrame{node: c, lastType: c.Type})
	}
}

// findMatchingFrame searches the stack from top down for a frame whose
// lastType is one of rule's accepted openers. Returns -1 if none match
// anywhere (the root frame never matches).
func (bp *blockSequenceParser) findMatchingFrame(rule blockRule) int {
	for d := len(bp.stack) - 1; d >= 1; d-- {
		for _, want := range rule.openers {
			if bp.stack[d].lastType == want {
				return d
			}
		}
	}
	return -1
}

// popUnclosed pops the current top frame, recording a missing-end error
// for its opener, used when a closer skips over unrelated nested blocks.
func (bp *blockSequenceParser) popUnclosed() {
	f := bp.top()
	bp.stack = bp.stack[:len(bp.stack)-1]
	if f.node != nil {
		bp.errors = append(bp.errors, &BlockError{
			Message: fmt.Sprintf("missing end for block opened by %v", f.node.Type),
			Pos:     f.node.Position,
		})
	}
}

func (bp *blockSequenceParser) closeRemaining() {
	for len(bp.stack) > 1 {
		bp.popUnclosed()
	}
}

// parseOneCmd parses the first command found in line and returns it along
// with whatever text remains unconsumed after it. A line may hold
// several '|'-separated commands; the caller loops parseOneCmd over the
// returned tail until it is empty, so each command still goes through
// handle individually and block structure recognition applies
// per-command.
// Commands flagged NOTRLCOM without TRLBAR (shell-outs, :global's
// sub-command, ...) and LITERAL commands never split on '|': getCmdArg
// already treats the whole rest of the line as their argument in that
// case, so tail comes back empty for them.
func (bp *blockSequenceParser) parseOneCmd(line string) (node *CommandNode, tail string) {
	i := 0
	i = skipWhite(line, i)
	if i >= len(line) {
		return nil, ""
	}
	if line[i] == '"' {
		return &CommandNode{Type: CmdComment, Position: CommandPosition{Lnr: bp.lnr}, RawArg: line[i:]}, ""
	}
	if bp.lnr == 1 && strings.HasPrefix(line, "#!") {
		return &CommandNode{Type: CmdHashbangComment, Position: CommandPosition{Lnr: bp.lnr}, RawArg: line}, ""
	}

	var rng Range
	hasRange := false
	if i < len(line) && (isDigit(line[i]) || strings.ContainsRune(".$%*'/?\\", rune(line[i]))) {
		r, end, err := parseRange(line, i, bp.ps.Options.has(FlagCpoStar))
		if err == nil && len(r.Segments) > 0 {
			rng = r
			hasRange = true
			i = end
		}
	}
	i = skipWhite(line, i)

	bang := false
	typ, name, end := findCommand(line, i)
	if typ == CmdMissing {
		if hasRange {
			// A bare range with no command means "go to that line"; model
			// it as an unknown command with an empty name.
			return &CommandNode{Type: CmdUnknown, Range: rng, HasRange: hasRange, Position: CommandPosition{Lnr: bp.lnr, Col: uint32(i)}}, ""
		}
		return nil, ""
	}
	i = end
	if i < len(line) && line[i] == '!' && typ != CmdUnknown {
		bang = true
		i++
	}

	node = &CommandNode{
		Type:     typ,
		Range:    rng,
		HasRange: hasRange,
		Bang:     bang,
		Position: CommandPosition{Lnr: bp.lnr, Col: uint32(i)},
	}
	if typ == CmdUser || typ == CmdUnknown {
		node.Name = name
	}

	def, hasDef := cmddefs[typ]

	// A modifier's target is the rest of the line, parsed as its own
	// command and stacked into Children rather than Next.
	// The depth cap keeps a line of stacked modifiers from recursing
	// past the same bound the block stack enforces.
	if hasDef && def.Flags&FlagIsmodifier != 0 {
		if bp.modDepth >= maxNestBlocks {
			return &CommandNode{
				Type:      CmdSyntaxError,
				Position:  node.Position,
				SyntaxErr: newParseError(line, "too many nested blocks", i),
			}, ""
		}
		bp.modDepth++
		child, childTail := bp.parseOneCmd(line[i:])
		bp.modDepth--
		node.Children = child
		return node, childTail
	}

	// :@" and :*" name the unnamed register; getCmdArg would otherwise
	// read the quote as a comment starter.
	if (typ == CmdAt || typ == CmdStar) && i < len(line) && line[i] == '"' {
		node.Reg.Name = '"'
		i++
	}

	var defFlags CmdFlag
	if hasDef {
		defFlags = def.Flags
	}
	// The argument starts at the first non-white character after the
	// name.
	i = skipWhite(line, i)
	arg, skips, argEnd := getCmdArg(line, i, defFlags)
	node.Skips = skips
	node.EndCol = uint32(argEnd)
	if defFlags&FlagLiteral == 0 && barTerminatesArg(defFlags) &&
		argEnd < len(line) && line[argEnd] == '|' {
		tail = line[argEnd+1:]
	}

	syntaxError := func(err error) (*CommandNode, string) {
		return &CommandNode{
			Type:      CmdSyntaxError,
			Position:  node.Position,
			SyntaxErr: toParseError(err, line),
		}, tail
	}

	if hasDef {
		// :substitute scans its own trailing flags and count (a leading
		// '#' is its delimiter, not an ex-flag), and :@'s "count" digit
		// is a register name.
		sharedFlags := defFlags
		switch typ {
		case CmdSubstitute:
			sharedFlags &^= FlagCount | FlagExflags
		case CmdAt, CmdStar:
			sharedFlags &^= FlagCount
		}
		var err error
		arg, err = parseSharedArgs(node, sharedFlags, arg)
		if err != nil {
			return syntaxError(err)
		}
		if defFlags&FlagEditcmd != 0 {
			cmdText, cmdEnd := cutEditCmd(arg, 0)
			if cmdText != "" && bp.modDepth < maxNestBlocks {
				bp.modDepth++
				child, _ := bp.parseOneCmd(cmdText)
				bp.modDepth--
				node.Children = child
			}
			arg = strings.TrimLeft(arg[cmdEnd:], " \t")
		}
	}

	switch typ {
	case CmdArgdo, CmdBufdo, CmdWindo, CmdTabdo:
		// The argument is itself a command sequence, kept as inline
		// bar-separated siblings under Children.
		var head, last *CommandNode
		rest := arg
		for rest != "" {
			child, childTail := bp.parseOneCmd(rest)
			if child != nil {
				if last == nil {
					head = child
				} else {
					last.Next = child
					child.Prev = last
				}
				last = child
			}
			rest = childTail
		}
		node.Children = head
		return node, tail
	}

	if hasDef && def.Parse != nil {
		bp.ps.curIndent = indentWidth(line)
		if err := def.Parse(bp.ps, node, arg); err != nil {
			return syntaxError(err)
		}
		return node, tail
	}
	node.RawArg = arg
	return node, tail
}

// ParserResult is the parse_string-shaped entry point's payload: the AST
// root plus every fetched source line, retained so diagnostics can cite
// them.
type ParserResult struct {
	Root  *CommandNode
	Lines []string
	Fname string
}

// ParseScript parses a whole script like ParseCommands, additionally
// retaining every line the LineGetter produced.
func ParseScript(opts CommandParserOptions, fname string, get LineGetter) (*ParserResult, error) {
	res := &ParserResult{Fname: fname}
	recording := func() (string, bool) {
		line, ok := get()
		if ok {
			res.Lines = append(res.Lines, line)
		}
		return line, ok
	}
	root, err := ParseCommands(opts, recording)
	res.Root = root
	return res, err
}

func toParseError(err error, line string) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return wrapParseError(line, err.Error(), 0, err)
}
