// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// wire inspects TLV account images and generates Go bindings from program
// schemas.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/wire/cmd/wire/bindgen"
	"github.com/luxfi/wire/cmd/wire/dump"
)

func main() {
	root := &cobra.Command{
		Use:          "wire",
		Short:        "Tools for the account record and instruction wire formats",
		SilenceUsage: true,
	}
	root.AddCommand(
		dump.Command(),
		bindgen.Command(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "wire: %s\n", err)
		os.Exit(1)
	}
}
