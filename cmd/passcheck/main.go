package main

import (
	"os"

	"github.com/baditaflorin/go_password_strength/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
