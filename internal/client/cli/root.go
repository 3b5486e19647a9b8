package cli

import (
	"bufio"
	"context"
	"os"
)

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to TuriSync CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
