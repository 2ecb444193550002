package keywordgen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
)

// renderKeywords produces the generated keywords.go source for the given
// package and keyword names. Names must already be normalized.
func renderKeywords(pkgName string, names []string) ([]byte, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by genkeywords; DO NOT EDIT.")

	// jennifer renders a comment containing a newline as a /* */ block,
	// so multi-line doc comments go through one Comment call per line.
	f.Comment("Keyword identifies one keyword token. The spelling emitted for a")
	f.Comment("Keyword is its lower-cased name.")
	f.Type().Id("Keyword").Int()

	f.Comment("Enum values for Keyword.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for i, name := range names {
			if i == 0 {
				g.Id("Keyword" + name).Id("Keyword").Op("=").Iota()
			} else {
				g.Id("Keyword" + name)
			}
		}
	})

	f.Comment("keywordNames holds the canonical name of every Keyword, indexed by the")
	f.Comment("Keyword value itself.")
	f.Var().Id("keywordNames").Op("=").Index(jen.Op("...")).String().ValuesFunc(func(g *jen.Group) {
		for _, name := range names {
			g.Line().Id("Keyword" + name).Op(":").Lit(name)
		}
		g.Line()
	})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	return buf.Bytes(), nil
}
