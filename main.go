package main

import (
	"context"

	"github.com/bjulian5/revpush/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
