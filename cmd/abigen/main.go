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

// abigen generates typed Go bindings for contracts from their ABI, either for
// a single interface or for a directory of compiler artifacts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davebryson/evmup/abigen"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	// Flags needed by abigen
	abiFlag = &cli.StringFlag{
		Name:  "abi",
		Usage: "Path to the contract ABI or compiler artifact json to bind, - for STDIN",
	}
	binFlag = &cli.StringFlag{
		Name:  "bin",
		Usage: "Path to the contract bytecode (generate deploy method)",
	}
	typeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Struct name for the binding (default = contract name)",
	}
	pkgFlag = &cli.StringFlag{
		Name:  "pkg",
		Usage: "Package name to generate the binding into",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Output file for the generated binding (default = stdout)",
	}
	inputPathFlag = &cli.StringFlag{
		Name:  "input-path",
		Usage: "Directory of compiler artifacts to bind, e.g. a Foundry out directory",
	}
	outputPathFlag = &cli.StringFlag{
		Name:  "output-path",
		Usage: "Directory receiving one binding file per contract",
	}
	excFlag = &cli.StringFlag{
		Name:  "exc",
		Usage: "Comma separated types to exclude from binding, as <dir>:<Contract> with * wildcards",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
)

var app = &cli.App{
	Name:  "abigen",
	Usage: "Contract Go binding generator",
	Flags: []cli.Flag{
		abiFlag,
		binFlag,
		typeFlag,
		pkgFlag,
		outFlag,
		inputPathFlag,
		outputPathFlag,
		excFlag,
		configFlag,
		verbosityFlag,
	},
	Before: setupLogging,
	Action: generate,
	Commands: []*cli.Command{
		{
			Name:   "dumpconfig",
			Usage:  "Show configuration values",
			Action: dumpConfig,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	var (
		output   io.Writer = os.Stderr
		useColor           = (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	)
	if useColor {
		output = colorable.NewColorableStderr()
	}
	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(output, level, useColor)))
	return nil
}

func generate(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	switch {
	case ctx.IsSet(abiFlag.Name):
		if ctx.IsSet(inputPathFlag.Name) {
			return errors.New("contract ABI (--abi) is mutually exclusive with the artifact directory (--input-path)")
		}
		return bindSingle(ctx, cfg)
	case cfg.InputPath != "":
		return bindDirectory(cfg)
	default:
		return errors.New("no contract ABI (--abi) or artifact directory (--input-path) specified")
	}
}

// bindSingle binds one ABI or artifact file, writing to --out or stdout.
func bindSingle(ctx *cli.Context, cfg abigenConfig) error {
	var (
		path     = ctx.String(abiFlag.Name)
		artifact *abigen.Artifact
		err      error
	)
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read input ABI: %v", err)
		}
		artifact, err = abigen.ParseArtifact(cfg.Package, data)
		if err != nil {
			return fmt.Errorf("failed to parse input ABI: %v", err)
		}
	} else if artifact, err = abigen.LoadArtifact(path); err != nil {
		return fmt.Errorf("failed to read input ABI: %v", err)
	}
	if ctx.IsSet(binFlag.Name) {
		bin, err := os.ReadFile(ctx.String(binFlag.Name))
		if err != nil {
			return fmt.Errorf("failed to read input bytecode: %v", err)
		}
		artifact.Bytecode = strings.TrimPrefix(strings.TrimSpace(string(bin)), "0x")
	}
	kind := artifact.Name
	if ctx.IsSet(typeFlag.Name) {
		kind = ctx.String(typeFlag.Name)
	}
	code, err := abigen.Bind([]string{kind}, []string{artifact.ABI}, []string{artifact.Bytecode}, cfg.Package)
	if err != nil {
		return fmt.Errorf("failed to generate ABI binding: %v", err)
	}
	// Either flush it out to a file or display on the standard output
	out := ctx.String(outFlag.Name)
	if out == "" {
		fmt.Printf("%s\n", code)
		return nil
	}
	if err := os.WriteFile(out, []byte(code), 0600); err != nil {
		return fmt.Errorf("failed to write ABI binding: %v", err)
	}
	log.Info("Generated binding", "type", kind, "file", out)
	return nil
}

// bindDirectory binds every artifact below the input path that passes the
// exclusion filter, one file per contract.
func bindDirectory(cfg abigenConfig) error {
	exclude, err := newNameFilter(cfg.Exclude...)
	if err != nil {
		return err
	}
	artifacts, err := abigen.LoadArtifacts(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %v", err)
	}
	// Contracts sharing a name would overwrite each other's file, so they
	// are rejected before anything is written.
	var (
		selected []*abigen.Artifact
		owners   = make(map[string]string) // output file -> artifact id
	)
	for _, artifact := range artifacts {
		id := artifactID(cfg.InputPath, artifact)
		if exclude.Matches(id) {
			log.Debug("Skipping excluded contract", "id", id)
			continue
		}
		file := bindingFile(artifact)
		if owner, ok := owners[file]; ok {
			return fmt.Errorf("contracts %s and %s both bind to %s, exclude one of them", owner, id, file)
		}
		owners[file] = id
		selected = append(selected, artifact)
	}
	if err := os.MkdirAll(cfg.OutputPath, 0755); err != nil {
		return err
	}
	var written int
	for _, artifact := range selected {
		id := artifactID(cfg.InputPath, artifact)
		code, err := abigen.Bind([]string{artifact.Name}, []string{artifact.ABI}, []string{artifact.Bytecode}, cfg.Package)
		if err != nil {
			return fmt.Errorf("failed to generate binding for %s: %v", id, err)
		}
		file := filepath.Join(cfg.OutputPath, bindingFile(artifact))
		if err := os.WriteFile(file, []byte(code), 0600); err != nil {
			return fmt.Errorf("failed to write binding for %s: %v", id, err)
		}
		log.Info("Generated binding", "contract", artifact.Name, "file", file)
		written++
	}
	log.Info("Finished generating bindings", "count", written, "skipped", len(artifacts)-written)
	return nil
}

// bindingFile is the name of the file holding the binding of artifact.
func bindingFile(artifact *abigen.Artifact) string {
	return strings.ToLower(artifact.Name) + ".go"
}

// artifactID names an artifact as <dir>:<Contract>, the directory being
// relative to root. Foundry stores Token.sol's Token as Token.sol/Token.json,
// giving Token.sol:Token.
func artifactID(root string, artifact *abigen.Artifact) string {
	dir := filepath.Dir(artifact.Path)
	if rel, err := filepath.Rel(root, dir); err == nil {
		dir = rel
	}
	return filepath.ToSlash(dir) + ":" + artifact.Name
}
