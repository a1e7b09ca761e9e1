// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Notebook is a Jupyter notebook document in nbformat 4.
type Notebook struct {
	Cells         []Cell           `json:"cells"`
	Metadata      NotebookMetadata `json:"metadata"`
	NBFormat      int              `json:"nbformat"`
	NBFormatMinor int              `json:"nbformat_minor"`
}

// CellType distinguishes markdown and code cells.
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
)

// Cell is one notebook content block. Code-only fields are pointers or
// omitted so markdown cells serialize without them.
type Cell struct {
	CellType       CellType       `json:"cell_type"`
	ExecutionCount *int           `json:"execution_count,omitempty"`
	Metadata       map[string]any `json:"metadata"`
	Outputs        []any          `json:"outputs,omitempty"`
	Source         []string       `json:"source"`
}

// MarshalJSON emits execution_count as null and outputs as [] on code cells,
// which nbformat requires.
func (c Cell) MarshalJSON() ([]byte, error) {
	type plain Cell
	if c.CellType != CellCode {
		return json.Marshal(plain(c))
	}
	outputs := c.Outputs
	if outputs == nil {
		outputs = []any{}
	}
	return json.Marshal(struct {
		CellType       CellType       `json:"cell_type"`
		ExecutionCount *int           `json:"execution_count"`
		Metadata       map[string]any `json:"metadata"`
		Outputs        []any          `json:"outputs"`
		Source         []string       `json:"source"`
	}{c.CellType, c.ExecutionCount, c.Metadata, outputs, c.Source})
}

type NotebookMetadata struct {
	KernelSpec   KernelSpec   `json:"kernelspec"`
	LanguageInfo LanguageInfo `json:"language_info"`
}

type KernelSpec struct {
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Name        string `json:"name"`
}

type LanguageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ExampleNotebook builds the two-cell starter notebook for a kernel.
func ExampleNotebook(kernelName, pythonVersion string) Notebook {
	return Notebook{
		Cells: []Cell{
			{
				CellType: CellMarkdown,
				Metadata: map[string]any{},
				Source: []string{
					"# Example Notebook\n",
					"\n",
					"This is an example notebook to test the project setup with UV and Jupyter.",
				},
			},
			{
				CellType: CellCode,
				Metadata: map[string]any{},
				Source: []string{
					"# Import base libraries\n",
					"import pandas as pd\n",
					"import numpy as np\n",
					"import matplotlib.pyplot as plt\n",
					"import seaborn as sns\n",
					"\n",
					"print('Setup completed successfully!')\n",
					"print(f'Pandas version: {pd.__version__}')\n",
					"print(f'NumPy version: {np.__version__}')",
				},
			},
		},
		Metadata: NotebookMetadata{
			KernelSpec: KernelSpec{
				DisplayName: kernelName,
				Language:    "python",
				Name:        kernelName,
			},
			LanguageInfo: LanguageInfo{Name: "python", Version: pythonVersion},
		},
		NBFormat:      4,
		NBFormatMinor: 4,
	}
}

// Encode serializes nb with one-space indentation, as Jupyter writes it.
func (nb Notebook) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", " ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(nb); err != nil {
		return nil, fmt.Errorf("failed to encode notebook: %w", err)
	}
	return buf.Bytes(), nil
}

// EnsureExampleNotebook writes nb to path unless a file already exists there.
// An existing file is never touched. created reports whether nb was written.
func EnsureExampleNotebook(path string, nb Notebook) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	data, err := nb.Encode()
	if err != nil {
		return false, err
	}
	// O_EXCL keeps a file that appeared after the check.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
