// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	SchemaKey  = "schema"
	PackageKey = "package"
	OutputKey  = "output"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(SchemaKey, "", "Program schema JSON to generate from (required)")
	flags.String(PackageKey, "bindings", "Package name of the generated source")
	flags.String(OutputKey, "", "Output file; stdout when empty")
}

type Config struct {
	Schema  string
	Package string
	Output  string
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	schema, err := flags.GetString(SchemaKey)
	if err != nil {
		return nil, err
	}
	if schema == "" {
		return nil, fmt.Errorf("--%s is required", SchemaKey)
	}

	pkg, err := flags.GetString(PackageKey)
	if err != nil {
		return nil, err
	}

	output, err := flags.GetString(OutputKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Schema:  schema,
		Package: pkg,
		Output:  output,
	}, nil
}
