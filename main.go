package main

import "github.com/vphpersson/usernamegen/cmd"

func main() {
	cmd.Execute()
}
