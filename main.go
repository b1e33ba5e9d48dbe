package main

import "pasacalle/commands"

func main() {
	commands.Execute()
}
