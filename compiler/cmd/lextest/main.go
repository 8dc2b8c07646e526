package main

import (
	"context"
	"os"
)

/* ---------- main ---------- */

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin))
}
