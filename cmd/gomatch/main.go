// A command line tool to search text with gomatch patterns
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gomatch: ")
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
