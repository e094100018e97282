/*
File   : zlang/cmd/zlang/main.go
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/zlang/cmd/zlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
