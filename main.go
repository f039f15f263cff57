package main

import "saltpass/cmd"

func main() {
	cmd.Execute()
}
