package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// cliOptions aggregates every flag; a -params YAML file may override any
// subset of them, with file values winning over flags.
type cliOptions struct {
	Seed        uint64
	Order       uint
	CycleLength int
	MaxDepth    int
	Accept      string
	Out         string
	Cycle       string
	Strict      bool
	Challenge   string
	StartNonce  uint64
	MaxAttempts uint64
	ParamsFile  string
	Verbose     bool
}

// fileParams mirrors cliOptions with optional fields, so a file only
// overrides what it mentions.
type fileParams struct {
	Seed        *uint64 `yaml:"seed"`
	Order       *uint   `yaml:"order"`
	CycleLength *int    `yaml:"cycle_length"`
	MaxDepth    *int    `yaml:"max_depth"`
	Accept      *string `yaml:"accept"`
	Out         *string `yaml:"out"`
	Cycle       *string `yaml:"cycle"`
	Strict      *bool   `yaml:"strict"`
	Challenge   *string `yaml:"challenge"`
	StartNonce  *uint64 `yaml:"start_nonce"`
	MaxAttempts *uint64 `yaml:"max_attempts"`
}

// loadParams overlays the YAML file at path onto dst.
func loadParams(path string, dst *cliOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fp fileParams
	if err = yaml.Unmarshal(data, &fp); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if fp.Seed != nil {
		dst.Seed = *fp.Seed
	}
	if fp.Order != nil {
		dst.Order = *fp.Order
	}
	if fp.CycleLength != nil {
		dst.CycleLength = *fp.CycleLength
	}
	if fp.MaxDepth != nil {
		dst.MaxDepth = *fp.MaxDepth
	}
	if fp.Accept != nil {
		dst.Accept = *fp.Accept
	}
	if fp.Out != nil {
		dst.Out = *fp.Out
	}
	if fp.Cycle != nil {
		dst.Cycle = *fp.Cycle
	}
	if fp.Strict != nil {
		dst.Strict = *fp.Strict
	}
	if fp.Challenge != nil {
		dst.Challenge = *fp.Challenge
	}
	if fp.StartNonce != nil {
		dst.StartNonce = *fp.StartNonce
	}
	if fp.MaxAttempts != nil {
		dst.MaxAttempts = *fp.MaxAttempts
	}

	return nil
}
