package main

import "github.com/MichonGoddijn231849/emotion-mvp/internal/cli"

func main() {
	cli.Main()
}
