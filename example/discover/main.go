// Command discover lists the Luny descriptor files found under the given
// paths, or the current directory with no arguments. This demonstrates
// the descriptor package's file discovery.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/CodeSmile-0000011110110111/LunyCodeGen/descriptor"
)

func main() {
	files, err := descriptor.Discover(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if len(files) == 0 {
		fmt.Println("no descriptor files found")
		return
	}
	for _, f := range files {
		fmt.Printf("%s (%d bytes)\n", f.Path, f.Size)
	}
}
