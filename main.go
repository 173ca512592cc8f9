/*
Copyright © 2026 Micromachine
*/
package main

import (
	"log/slog"

	"micromachine.dev/fingerprint/cmd"
	"micromachine.dev/fingerprint/lib/utils"
)

func main() {
	slog.SetDefault(slog.New(utils.NewColorHandler()))
	cmd.Execute()
}
