package main

import "github.com/zinc-sig/uvkit/cmd"

func main() {
	cmd.Execute(cmd.NewVerifyCommand(cmd.ExecRunner))
}
