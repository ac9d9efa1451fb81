// Biletbudur is a tool for managing a biletbudur account and its favorites from the command line.
package main

import (
	"github.com/emreeozkull/biletbudur-cli/cmd"
)

func main() {
	cmd.Run()
}
