package main

import (
	"log"

	"github.com/bethropolis/lazyhex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
