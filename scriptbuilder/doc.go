// Package scriptbuilder provides the text assembler used to emit generated
// script sources. It combines a plain append buffer with indentation
// tracking and closed sets of punctuation, operator, and keyword tokens, so
// emitter code states its intent ([Builder.AppendKeyword],
// [Builder.OpenBlock]) instead of concatenating string literals.
//
// The primary entry point is [New], which returns an empty [Builder].
// Output accumulates in memory and is retrieved with [Builder.String]; the
// builder holds no files or other external resources.
//
// A Builder belongs to a single goroutine and is not synchronized. The
// keyword spelling table shared by all builders is built once on first use
// and never changes afterwards, so concurrent readers are safe.
//
//go:generate go run ../cmd/genkeywords -keywords ../cmd/genkeywords/keywords.yml -output . -package scriptbuilder
package scriptbuilder
