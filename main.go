package main

import (
	"log"

	"github.com/cwbudde/clsaxpy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error: %v\n", err)
	}
}
