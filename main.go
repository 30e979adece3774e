package main

import "gadget_tui/cmd"

func main() {
	cmd.Execute()
}
