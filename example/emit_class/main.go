// Command emit_class assembles a small C# class with the scriptbuilder
// package and prints it. This demonstrates keyword sequences, token
// padding, and indent blocks.
package main

import (
	"fmt"
	"log"

	"github.com/CodeSmile-0000011110110111/LunyCodeGen/scriptbuilder"
)

func main() {
	b := scriptbuilder.New()

	b.AppendLine("// <auto-generated>")

	b.AppendIndented()
	if err := b.AppendKeywords(scriptbuilder.KeywordNamespace); err != nil {
		log.Fatal(err)
	}
	b.AppendLine("Luny.Generated")
	b.OpenBlock("{")

	b.AppendIndented()
	if err := b.AppendKeywords(scriptbuilder.KeywordPublic, scriptbuilder.KeywordStatic, scriptbuilder.KeywordClass); err != nil {
		log.Fatal(err)
	}
	b.AppendLine("GameAPI")
	b.OpenBlock("{")

	// public static bool IsReady => true;
	b.AppendIndented()
	if err := b.AppendKeywords(scriptbuilder.KeywordPublic, scriptbuilder.KeywordStatic); err != nil {
		log.Fatal(err)
	}
	b.Append("bool IsReady")
	if err := b.AppendOperator(scriptbuilder.OpLambda, scriptbuilder.PadAround, ' '); err != nil {
		log.Fatal(err)
	}
	if err := b.AppendKeyword(scriptbuilder.KeywordTrue, scriptbuilder.PadNone, ' '); err != nil {
		log.Fatal(err)
	}
	if err := b.AppendLinePunct(scriptbuilder.PunctSemicolon); err != nil {
		log.Fatal(err)
	}

	if err := b.CloseBlock("}"); err != nil {
		log.Fatal(err)
	}
	if err := b.CloseBlock("}"); err != nil {
		log.Fatal(err)
	}

	fmt.Print(b.String())
}
