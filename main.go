package main

import "github.com/theirongolddev/greenscore/cmd"

func main() {
	cmd.Execute()
}
