package main

import "github.com/diogo/seodraft/internal/commands"

func main() {
	commands.Execute()
}
