package main

import "blogctl/cmd"

func main() {
	cmd.Execute()
}
