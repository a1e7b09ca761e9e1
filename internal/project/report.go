// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package project

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
	"time"
)

// ReportData fills the status report template.
type ReportData struct {
	GeneratedAt    time.Time
	ProjectDir     string
	PackageManager string
	KernelName     string
	NotebookPath   string
	TestsDir       string
}

var reportTemplate = template.Must(template.New("status").Parse(`# PROJECT STATUS VERIFICATION

## Setup Completed: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}

## Expected Project Structure:
` + "```" + `
{{.ProjectDir}}/
├── .venv/                    # Virtual environment
├── .vscode/                  # VS Code configuration
├── {{.NotebookPath}}   # Example notebook
├── {{.TestsDir}}/                    # Test package
├── src/                      # Python source code
├── .gitignore                # Git ignore file
├── pyproject.toml            # {{.PackageManager}} configuration & dependencies
├── uv.lock                   # Dependencies lock file
└── README.md                 # Documentation
` + "```" + `

## Status: PROJECT READY FOR USE

### Dependency Management:
- **{{.PackageManager}}**: active and configured
- **pyproject.toml**: main dependency configuration
- **uv.lock**: exact versions locked
- **Jupyter kernel**: {{.KernelName}}

## Ready to Use Commands:

` + "```" + `bash
# Start Jupyter Lab
{{.PackageManager}} run jupyter lab

# Test dependencies
{{.PackageManager}} run python -c "import pandas, numpy, matplotlib, seaborn; print('All OK!')"

# Add new dependencies
{{.PackageManager}} add package-name

# Use the automation tool
nbproj jupyter
` + "```" + `

## Next Steps:
1. Open VS Code in this folder
2. Install recommended extensions when prompted
3. Select the .venv Python interpreter
4. Open {{.NotebookPath}} and test it
5. Start developing your notebooks!
`))

// RenderStatusReport returns the markdown status report for data.
func RenderStatusReport(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render status report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteStatusReport renders the report and writes it to path, replacing any
// previous report.
func WriteStatusReport(path string, data ReportData) error {
	body, err := RenderStatusReport(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
