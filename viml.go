// Package viml is an embryonic compiler front end for VimL, the Ex-command
// and expression language of Vim and Neovim.
//
// It parses a VimL script into a typed abstract syntax tree and can render
// that tree back out two ways: as canonical VimL text (Print) or as Lua
// source calling into a small vim.* runtime surface (Translate). Executing
// the parsed script, reproducing Vim's diagnostics byte for byte, and
// historical quirk fidelity are all out of scope; this package only builds
// and re-renders the tree.
//
// Parsing is driven by a LineGetter, so the package never does file I/O
// itself:
//
//	lines := viml.Lines([]string{`echo 1 + 2 * 3`})
//	root, err := viml.ParseCommands(viml.DefaultOptions(), lines)
//
// The expression grammar is precedence-climbed over seven fixed levels
// (ternary, ||, &&, comparisons, + - ., * / %, unary/primary); see
// expr_parser.go. A second, token-based expression parser lives in
// expr_token.go (ParseExprTokens): it tokenizes up front and parses over
// that token slice instead of a byte cursor, which is what lets it also
// report a highlight group per token (used by editor integrations, not
// by Print/Translate). The command grammar is line oriented, with a
// block stack for if/while/for/try/function; see blocks.go and
// cmd_dispatch.go.
package viml
