// Command lexfsm inspects declarative machine definitions: it renders their
// diagnostic graphs and drives input text through them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
