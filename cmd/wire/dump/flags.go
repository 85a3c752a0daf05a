// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dump

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	PathKey     = "path"
	EncodingKey = "encoding"
	VerboseKey  = "verbose"
)

const (
	EncodingRaw    = "raw"
	EncodingHex    = "hex"
	EncodingBase58 = "base58"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(PathKey, "", "Account image to read (required)")
	flags.String(EncodingKey, EncodingRaw, "Input encoding: raw, hex, or base58")
	flags.Bool(VerboseKey, false, "Log every skipped unrecognized record")
}

type Config struct {
	Path     string
	Encoding string
	Verbose  bool
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	path, err := flags.GetString(PathKey)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("--%s is required", PathKey)
	}

	encoding, err := flags.GetString(EncodingKey)
	if err != nil {
		return nil, err
	}
	switch encoding {
	case EncodingRaw, EncodingHex, EncodingBase58:
	default:
		return nil, fmt.Errorf("unknown --%s %q", EncodingKey, encoding)
	}

	verbose, err := flags.GetBool(VerboseKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Path:     path,
		Encoding: encoding,
		Verbose:  verbose,
	}, nil
}
