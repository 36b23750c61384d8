// Command bondlist prints the bonds of the molecule in an XYZ file, frame by frame.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bondlist: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
