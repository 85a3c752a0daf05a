// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bindgen implements `wire bindgen`, which generates Go bindings
// from a program schema.
package bindgen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luxfi/wire/schema"
	"github.com/luxfi/wire/schema/bindgen"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "bindgen",
		Short: "Generates Go bindings from a program schema",
		RunE:  bindgenFunc,
	}
	AddFlags(c.Flags())
	return c
}

func bindgenFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(config.Schema)
	if err != nil {
		return err
	}
	var program schema.Program
	if err := json.Unmarshal(raw, &program); err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	src, err := bindgen.Generate(&program, config.Package)
	if err != nil {
		return err
	}

	if config.Output == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(config.Output, src, 0o644); err != nil {
		return err
	}
	logger.Info("wrote bindings",
		zap.String("program", program.Name),
		zap.String("output", config.Output),
		zap.Int("bytes", len(src)),
	)
	return nil
}
