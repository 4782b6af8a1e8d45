package main

import "github.com/compozy/utildemo/cmd/utildemo/commands"

func main() {
	commands.Execute()
}
