package scriptbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by Builder operations.
var (
	// ErrIndentUnderflow reports a decrement below indent level zero,
	// typically an unbalanced CloseBlock. The level is clamped to zero so
	// later output stays usable.
	ErrIndentUnderflow = errors.New("indent underflow")

	// ErrUnknownToken reports a Punct, Operator, or Keyword value outside
	// its declared set.
	ErrUnknownToken = errors.New("unknown token")
)

// Default indent unit used when [WithIndent] is not given: four spaces
// per level.
const (
	DefaultIndentChar  = ' '
	DefaultIndentWidth = 4
)

// Builder assembles script source text. It tracks an indent level that
// [Builder.AppendIndented] and related operations prefix onto lines, and
// caches the indent string per level so each is computed once.
//
// Create one with [New].
type Builder struct {
	buf         strings.Builder
	indentLevel int
	indentChar  byte
	indentWidth int
	indentCache []string
}

// Option configures a Builder created by [New].
type Option func(*Builder)

// WithInitialText seeds the builder's buffer with text.
func WithInitialText(text string) Option {
	return func(b *Builder) {
		b.buf.WriteString(text)
	}
}

// WithIndent sets the indent unit to width repetitions of c per level.
// A width below 1 is raised to 1.
func WithIndent(c byte, width int) Option {
	return func(b *Builder) {
		if width < 1 {
			width = 1
		}
		b.indentChar = c
		b.indentWidth = width
	}
}

// New returns an empty Builder at indent level zero.
func New(opts ...Option) *Builder {
	b := &Builder{
		indentChar:  DefaultIndentChar,
		indentWidth: DefaultIndentWidth,
		indentCache: []string{""},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Append writes text to the buffer exactly as given.
func (b *Builder) Append(text string) {
	b.buf.WriteString(text)
}

// AppendAll writes each text in order with nothing between them.
func (b *Builder) AppendAll(texts ...string) {
	for _, t := range texts {
		b.buf.WriteString(t)
	}
}

// AppendToken writes text padded with padChar on the sides selected by
// pad, one character per side.
func (b *Builder) AppendToken(text string, pad Padding, padChar byte) {
	if pad.before() {
		b.buf.WriteByte(padChar)
	}
	b.buf.WriteString(text)
	if pad.after() {
		b.buf.WriteByte(padChar)
	}
}

// AppendPunct resolves p and writes it like [Builder.AppendToken]. An
// unknown punctuation value leaves the buffer untouched and returns an
// error.
func (b *Builder) AppendPunct(p Punct, pad Padding, padChar byte) error {
	lit, err := p.literal()
	if err != nil {
		return err
	}
	b.AppendToken(lit, pad, padChar)
	return nil
}

// AppendOperator resolves op and writes it like [Builder.AppendToken].
func (b *Builder) AppendOperator(op Operator, pad Padding, padChar byte) error {
	lit, err := op.literal()
	if err != nil {
		return err
	}
	b.AppendToken(lit, pad, padChar)
	return nil
}

// AppendKeyword resolves the spelling of k and writes it like
// [Builder.AppendToken].
func (b *Builder) AppendKeyword(k Keyword, pad Padding, padChar byte) error {
	spelling, err := k.Spelling()
	if err != nil {
		return err
	}
	b.AppendToken(spelling, pad, padChar)
	return nil
}

// AppendKeywords writes each keyword's spelling followed by a single
// space, in argument order. On an unknown keyword the keywords already
// written remain in the buffer and the error is returned.
func (b *Builder) AppendKeywords(keywords ...Keyword) error {
	for _, k := range keywords {
		if err := b.AppendKeyword(k, PadAfter, ' '); err != nil {
			return err
		}
	}
	return nil
}

// AppendWords writes each text followed by a single space.
func (b *Builder) AppendWords(texts ...string) {
	for _, t := range texts {
		b.buf.WriteString(t)
		b.buf.WriteByte(' ')
	}
}

// AppendRepeat writes count repetitions of c. A negative count is an
// error; zero writes nothing.
func (b *Builder) AppendRepeat(c byte, count int) error {
	if count < 0 {
		return fmt.Errorf("repeat count %d is negative", count)
	}
	b.buf.WriteString(strings.Repeat(string(c), count))
	return nil
}

// AppendIndented writes the current indent string once, then each text
// verbatim. No newline is added; with no texts only the indent is
// written.
func (b *Builder) AppendIndented(texts ...string) {
	b.buf.WriteString(b.indentString(b.indentLevel))
	for _, t := range texts {
		b.buf.WriteString(t)
	}
}

// AppendLine writes each text verbatim followed by exactly one newline.
// With no texts it writes a bare newline. The indent string is not
// applied; use [Builder.AppendIndentedLine] for that.
func (b *Builder) AppendLine(texts ...string) {
	for _, t := range texts {
		b.buf.WriteString(t)
	}
	b.buf.WriteByte('\n')
}

// AppendLinePunct resolves p and writes it followed by a newline.
func (b *Builder) AppendLinePunct(p Punct) error {
	lit, err := p.literal()
	if err != nil {
		return err
	}
	b.buf.WriteString(lit)
	b.buf.WriteByte('\n')
	return nil
}

// AppendLines writes count bare newlines. A negative count is an error.
func (b *Builder) AppendLines(count int) error {
	if count < 0 {
		return fmt.Errorf("line count %d is negative", count)
	}
	b.buf.WriteString(strings.Repeat("\n", count))
	return nil
}

// AppendIndentedLine writes the indent string, each text, and a newline.
func (b *Builder) AppendIndentedLine(texts ...string) {
	b.AppendIndented(texts...)
	b.buf.WriteByte('\n')
}

// IncrementIndent raises the indent level by one. It always succeeds.
func (b *Builder) IncrementIndent() {
	b.indentLevel++
}

// DecrementIndent lowers the indent level by one. Decrementing at level
// zero keeps the level at zero and returns [ErrIndentUnderflow].
func (b *Builder) DecrementIndent() error {
	if b.indentLevel == 0 {
		return ErrIndentUnderflow
	}
	b.indentLevel--
	return nil
}

// OpenBlock writes text as an indented line and raises the indent level,
// so following lines nest one level deeper.
func (b *Builder) OpenBlock(text string) {
	b.AppendIndentedLine(text)
	b.indentLevel++
}

// CloseBlock lowers the indent level and writes text as an indented
// line. An unbalanced close returns [ErrIndentUnderflow] without writing.
func (b *Builder) CloseBlock(text string) error {
	if err := b.DecrementIndent(); err != nil {
		return fmt.Errorf("closing block %q: %w", text, err)
	}
	b.AppendIndentedLine(text)
	return nil
}

// Level returns the current indent level.
func (b *Builder) Level() int {
	return b.indentLevel
}

// IsEmpty reports whether the buffer holds no text.
func (b *Builder) IsEmpty() bool {
	return b.buf.Len() == 0
}

// String returns the accumulated text. It does not modify the builder
// and may be called repeatedly.
func (b *Builder) String() string {
	return b.buf.String()
}

// Reset empties the buffer. The indent level and indent configuration
// are kept, so emission can continue at the same depth.
func (b *Builder) Reset() {
	b.buf.Reset()
}

// indentString returns the indent prefix for level. The cache grows to
// the highest level seen; entries are never recomputed or discarded.
func (b *Builder) indentString(level int) string {
	for len(b.indentCache) <= level {
		next := strings.Repeat(string(b.indentChar), b.indentWidth*len(b.indentCache))
		b.indentCache = append(b.indentCache, next)
	}
	return b.indentCache[level]
}
