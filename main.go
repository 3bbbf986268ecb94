package main

import "github.com/kandula/kancli/cmd"

func main() {
	cmd.Execute()
}
