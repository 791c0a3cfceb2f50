// Command pytok tokenizes a file and prints the resulting tokens.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/gopylex/pylex/lexer"
	"github.com/gopylex/pylex/lexer/token"
)

func main() {
	log.SetFlags(0)

	inputFile := flag.String("file", "", "Path to the source file to tokenize")
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("Error: -file flag is required")
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *inputFile, err)
	}

	tokens := lexer.Analyze(lexer.NewByteSliceSource(data), lexer.PythonKeywords)

	errCount := 0
	for _, t := range tokens {
		repr.Println(t)
		if t.Type == token.ERROR {
			errCount++
		}
	}
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "%d token(s) could not be lexed\n", errCount)
		os.Exit(1)
	}
}
