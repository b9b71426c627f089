package main

import (
	"fmt"
	"os"

	"github.com/bkuzmin/chess-game-backend/internal/tui"
)

func main() {
	if err := tui.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
