package main

import (
	"log"

	"github.com/patternkit/patternkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
