package main

import (
	"fmt"
	"medibook-client/internal/pkg/exceptions"
	"os"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage prefers the user facing message of a CustomError over its
// developer detail.
func errorMessage(err error) string {
	return exceptions.ClientMessageOf(err, err.Error())
}
