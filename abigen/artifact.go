// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abigen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// errNoABI is returned for JSON documents that carry no contract interface.
var errNoABI = errors.New("no abi in artifact")

// Artifact is a compiled contract: its interface and optional creation code.
type Artifact struct {
	Name     string // Contract name
	Path     string // File the artifact was loaded from, if any
	ABI      string // JSON encoded interface
	Bytecode string // Hex creation code, empty for interfaces
}

// artifactJSON covers the Foundry and Hardhat output layouts. Foundry nests
// the bytecode in an object, Hardhat stores the hex string directly.
type artifactJSON struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// ParseArtifact decodes a compiler artifact. A bare JSON array is taken as an
// interface without bytecode. The name is used when the document has none.
func ParseArtifact(name string, data []byte) (*Artifact, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%s: invalid abi json", name)
		}
		return &Artifact{Name: name, ABI: string(data)}, nil
	}
	var raw artifactJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(raw.ABI) == 0 || raw.ABI[0] != '[' {
		return nil, fmt.Errorf("%s: %w", name, errNoABI)
	}
	artifact := &Artifact{Name: name, ABI: string(raw.ABI)}
	if raw.ContractName != "" {
		artifact.Name = raw.ContractName
	}
	if len(raw.Bytecode) > 0 {
		code, err := parseBytecode(raw.Bytecode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		artifact.Bytecode = code
	}
	return artifact, nil
}

func parseBytecode(raw json.RawMessage) (string, error) {
	var code string
	if raw[0] == '{' {
		var obj struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return "", err
		}
		code = obj.Object
	} else if err := json.Unmarshal(raw, &code); err != nil {
		return "", err
	}
	code = strings.TrimPrefix(code, "0x")
	// Unlinked library placeholders cannot be deployed as is.
	if strings.Contains(code, "__") {
		return "", errors.New("bytecode has unlinked library references")
	}
	return code, nil
}

// LoadArtifact reads a compiler artifact or bare ABI file. The contract is
// named after the file unless the artifact names it.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	artifact, err := ParseArtifact(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), data)
	if err != nil {
		return nil, err
	}
	artifact.Path = path
	return artifact, nil
}

// LoadArtifacts loads every contract artifact below dir, sorted by name. JSON
// files without an interface, such as build info, are skipped.
func LoadArtifacts(dir string) ([]*Artifact, error) {
	var artifacts []*Artifact
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		artifact, err := LoadArtifact(path)
		if errors.Is(err, errNoABI) {
			return nil
		}
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifact)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})
	return artifacts, nil
}
