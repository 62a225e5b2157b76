package main

import "github.com/masmgr/rust-commits-go/cmd"

func main() {
	cmd.Run()
}
