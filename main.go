package main

import "github.com/markkmetz/scos2000/cmd"

func main() {
	cmd.Execute()
}
