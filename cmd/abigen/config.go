// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"go/token"
	"os"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// abigenConfig holds the generator settings that can be kept in a TOML file.
// Command line flags take precedence over file values.
type abigenConfig struct {
	Package    string   // Go package of the generated bindings
	InputPath  string   // Directory of compiler artifacts
	OutputPath string   // Directory receiving one binding file per contract
	Exclude    []string // Name filters of artifacts not to bind
}

var defaultConfig = abigenConfig{
	Package:    "bindings",
	OutputPath: "bindings",
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadConfig(file string, cfg *abigenConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies the flags
// on top of it.
func makeConfig(ctx *cli.Context) (abigenConfig, error) {
	cfg := defaultConfig
	if file := ctx.String(configFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
		log.Debug("Loaded configuration", "file", file)
	}
	if ctx.IsSet(pkgFlag.Name) {
		cfg.Package = ctx.String(pkgFlag.Name)
	}
	if ctx.IsSet(inputPathFlag.Name) {
		cfg.InputPath = ctx.String(inputPathFlag.Name)
	}
	if ctx.IsSet(outputPathFlag.Name) {
		cfg.OutputPath = ctx.String(outputPathFlag.Name)
	}
	if ctx.IsSet(excFlag.Name) {
		cfg.Exclude = splitAndTrim(ctx.String(excFlag.Name))
	}
	if !token.IsIdentifier(cfg.Package) {
		return cfg, fmt.Errorf("invalid package name %q", cfg.Package)
	}
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

// splitAndTrim splits input separated by a comma and trims excessive white
// space from the substrings.
func splitAndTrim(input string) (ret []string) {
	l := strings.Split(input, ",")
	for _, r := range l {
		if r = strings.TrimSpace(r); r != "" {
			ret = append(ret, r)
		}
	}
	return ret
}
