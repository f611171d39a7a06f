package main

import (
	"log"

	"github.com/indigo-web/mediatype/cmd/mediatype/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mediatype: ")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
