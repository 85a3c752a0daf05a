// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dump implements `wire dump`, which walks the record chain of a TLV
// account image and prints every recognized record.
package dump

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luxfi/wire/discriminator"
	"github.com/luxfi/wire/stakepool"
	"github.com/luxfi/wire/tlv"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "dump",
		Short: "Prints the records stored in a TLV account image",
		RunE:  dumpFunc,
	}
	AddFlags(c.Flags())
	return c
}

func dumpFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := readImage(config)
	if err != nil {
		return err
	}

	buf, err := tlv.Wrap(data)
	if err != nil {
		return fmt.Errorf("parsing record chain: %w", err)
	}
	logger.Info("parsed account image",
		zap.Int("capacity", buf.Capacity()),
		zap.Int("used", buf.Used()),
	)

	buf.Range(func(d discriminator.Discriminator, value []byte) bool {
		v, err := stakepool.Registry.Decode(d, value)
		if err != nil {
			if config.Verbose {
				logger.Warn("skipping record",
					zap.Stringer("discriminator", d),
					zap.Int("length", len(value)),
					zap.Error(err),
				)
			}
			return true
		}
		logger.Info("record",
			zap.Stringer("discriminator", d),
			zap.Int("length", len(value)),
			zap.Reflect("value", v),
		)
		return true
	})
	return nil
}

func readImage(config *Config) ([]byte, error) {
	raw, err := os.ReadFile(config.Path)
	if err != nil {
		return nil, err
	}
	switch config.Encoding {
	case EncodingHex:
		return hex.DecodeString(strings.TrimSpace(string(raw)))
	case EncodingBase58:
		return base58.Decode(strings.TrimSpace(string(raw)))
	default:
		return raw, nil
	}
}
