package validate

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/wrensuite/wren/internal/output"
)

// report renders the run summary and, on failure, the full missing list
// with remediation steps. The missing list is never truncated.
func (r *Runner) report(res *Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Set", "Count"})
	t.AppendRows([]table.Row{
		{"Used", res.Used.Len()},
		{"Declared (Imports)", res.Declared.Len()},
		{"Declared (Suggests)", res.Optional.Len()},
		{"Locked", res.Locked.Len()},
	})
	t.SetStyle(table.StyleLight)
	t.Render()

	if res.Passed() {
		output.Success("All used packages are declared in " + r.cfg.ManifestPath)
		return
	}

	output.Error(fmt.Sprintf("%d used package(s) are not declared in %s:",
		res.Missing.Len(), r.cfg.ManifestPath))
	for _, name := range res.Missing.Names() {
		output.Step(name)
	}
	output.Info("To fix:")
	output.Step("add the missing packages to the Imports field in " + r.cfg.ManifestPath)
	output.Step("or run: wren fix")
	output.Step("or install them in the project library and run renv::snapshot()")
}
