package main

import (
	"github.com/mj1618/accessibility/cmd"
	_ "github.com/mj1618/accessibility/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
