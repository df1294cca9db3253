package main

import "github.com/xorkit/xorkit/cmd/xorkit"

func main() { xorkit.Execute() }
