package stress

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

type Report struct {
	RunID  string `json:"run_id" yaml:"run_id"`
	Config Config `json:"config" yaml:"config"`

	// Results
	Steps        int               `json:"steps" yaml:"steps"`
	Elapsed      time.Duration     `json:"elapsed" yaml:"elapsed"`
	OpCounts     map[string]uint64 `json:"op_counts" yaml:"op_counts"`
	StorageMoves int               `json:"storage_moves" yaml:"storage_moves"`
	MaxCapacity  int               `json:"max_capacity" yaml:"max_capacity"`
	FinalCount   int               `json:"final_count" yaml:"final_count"`
	FinalCap     int               `json:"final_capacity" yaml:"final_capacity"`
	Distinct     int               `json:"distinct_values" yaml:"distinct_values"`
	Divergence   string            `json:"divergence,omitempty" yaml:"divergence,omitempty"`
}

type opCount struct {
	Name  string
	Count uint64
}

// SortedOpCounts returns the per-operation counts ordered by name.
func (r *Report) SortedOpCounts() []opCount {
	out := make([]opCount, 0, len(r.OpCounts))
	for name, n := range r.OpCounts {
		out = append(out, opCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Passed reports whether the run finished without a divergence.
func (r *Report) Passed() bool {
	return r.Divergence == ""
}

// Render writes the report in the given format: text, json or yaml.
func (r *Report) Render(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.renderText(w)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (r *Report) renderText(w io.Writer) error {
	const reportTemplate = `
# Array Stress Test Report

- **Run ID:** {{.RunID}}

## Test Configuration
- **Seed:** {{.Config.Seed}}
- **Requested Ops:** {{.Config.Ops}}
- **Value Range:** [0, {{.Config.MaxValue}})
- **Max Batch:** {{.Config.MaxBatch}}
{{- if .Config.Duration}}
- **Time Limit:** {{.Config.Duration}}
{{- end}}

## Results
- **Steps Executed:** {{.Steps}}
- **Elapsed:** {{.Elapsed}} ({{perop .Elapsed .Steps}} per op)
- **Storage Moves:** {{.StorageMoves}}
- **Max Capacity:** {{.MaxCapacity}}
- **Final Count/Capacity:** {{.FinalCount}}/{{.FinalCap}}
- **Distinct Values Held:** {{.Distinct}}

## Operations
{{- range .SortedOpCounts}}
- {{.Name}}: {{.Count}}
{{- end}}

## Verdict
{{if .Passed}}PASS{{else}}FAIL: {{.Divergence}}{{end}}
`

	fm := template.FuncMap{
		"perop": func(d time.Duration, steps int) string {
			if steps == 0 {
				return "N/A"
			}
			return (d / time.Duration(steps)).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
