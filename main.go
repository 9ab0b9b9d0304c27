package main

import "github.com/jake/detectlang/cmd"

func main() {
	cmd.Execute()
}
