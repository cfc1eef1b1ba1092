package viml

import "vimlc.dev/viml/runtime"

// ParserFlag mirrors the Vim options that change parsing behavior,
// passed explicitly by the caller rather than read from hidden global
// state.
type ParserFlag uint32

const (
	FlagExmode ParserFlag = 1 << iota
	FlagCpoStar
	FlagCpoBslash
	FlagCpoSpeci
	FlagCpoKeycode
	FlagCpoBar
	FlagCpoSubpc
	FlagAltKeymap
	FlagRightLeft
	FlagMagic
	FlagEd
)

// CommandParserOptions is the small bitset struct the caller constructs
// once and threads through parsing; there is no hidden global
// configuration object. Termcodes is the injected special-key
// replacement service :map-family parsers run their LHS/RHS through; a
// nil value leaves key notation untouched.
type CommandParserOptions struct {
	Flags     ParserFlag
	Termcodes runtime.Termcodes
}

// DefaultOptions returns the options matching Vim's defaults: 'magic' on,
// all 'cpoptions' bits off, no-op termcode replacement.
func DefaultOptions() CommandParserOptions {
	return CommandParserOptions{Flags: FlagMagic, Termcodes: runtime.NoopTermcodes{}}
}

func (o CommandParserOptions) has(f ParserFlag) bool { return o.Flags&f != 0 }
