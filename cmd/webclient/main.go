package main

import (
	"fmt"
	"os"

	"github.com/HexmosTech/webclient"
	_ "github.com/mtibben/androiddnsfix"
)

func main() {
	if err := webclient.Main(&webclient.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(webclient.ExitCode(err))
	}
}
