// Package main provides the command-line interface of the localized strings cleaner.
package main

import (
	"log"
)

func main() {
	if err := createRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
