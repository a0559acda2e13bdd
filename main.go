package main

import "github.com/exitthree/formgate/cmd"

func main() {
	cmd.Execute()
}
