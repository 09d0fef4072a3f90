package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"tfinspect/internal/models"
)

// OutputFormatType defines the format types for the module report.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// PrintModule prints the inspection result in the given output format.
// Supported formats: "json" (machine-readable) and "table" (human-friendly).
func PrintModule(mod *models.Module, format OutputFormatType) error {
	return FprintModule(os.Stdout, mod, format)
}

// FprintModule writes the inspection result to w in the given format.
func FprintModule(w io.Writer, mod *models.Module, format OutputFormatType) error {
	switch format {
	case OutputFormatTypeJSON:
		return printJSONModule(w, mod)
	case OutputFormatTypeTABLE:
		return printTableModule(w, mod)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// printJSONModule writes the module in JSON format. Map keys are emitted in
// sorted order, so the same module always renders byte-identically.
func printJSONModule(w io.Writer, mod *models.Module) error {
	data, err := json.MarshalIndent(mod, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling module to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTableModule writes the module inventory in a human-friendly table
// format.
func printTableModule(w io.Writer, mod *models.Module) error {
	// Using tabwriter to produce a nicely aligned table output.
	writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(writer, "\nMODULE:\t%s\n", mod.Path)

	if len(mod.RequiredCore) > 0 {
		fmt.Fprintf(writer, "REQUIRED CORE:\t%s\n", strings.Join(mod.RequiredCore, ", "))
	}

	if len(mod.RequiredProviders) > 0 {
		fmt.Fprintln(writer, "\nPROVIDER\tSOURCE\tCONSTRAINTS")
		for _, name := range sortedKeys(mod.RequiredProviders) {
			req := mod.RequiredProviders[name]
			fmt.Fprintf(writer, "%s\t%s\t%s\n", name, orDash(req.Source), orDash(strings.Join(req.VersionConstraints, ", ")))
		}
	}

	if len(mod.Variables) > 0 {
		fmt.Fprintln(writer, "\nVARIABLE\tTYPE\tDEFAULT")
		for _, name := range sortedKeys(mod.Variables) {
			v := mod.Variables[name]
			fmt.Fprintf(writer, "%s\t%s\t%s\n", name, orDash(v.Type), formatStatic(v.Default))
		}
	}

	if len(mod.Outputs) > 0 {
		fmt.Fprintln(writer, "\nOUTPUT\tDESCRIPTION")
		for _, name := range sortedKeys(mod.Outputs) {
			fmt.Fprintf(writer, "%s\t%s\n", name, orDash(mod.Outputs[name].Description))
		}
	}

	if len(mod.ManagedResources) > 0 || len(mod.DataResources) > 0 {
		fmt.Fprintln(writer, "\nRESOURCE\tMODE\tPROVIDER")
		for _, addr := range sortedKeys(mod.ManagedResources) {
			r := mod.ManagedResources[addr]
			fmt.Fprintf(writer, "%s\t%s\t%s\n", addr, r.Mode, orDash(r.Provider))
		}
		for _, addr := range sortedKeys(mod.DataResources) {
			r := mod.DataResources[addr]
			fmt.Fprintf(writer, "%s\t%s\t%s\n", addr, r.Mode, orDash(r.Provider))
		}
	}

	if len(mod.ModuleCalls) > 0 {
		fmt.Fprintln(writer, "\nMODULE CALL\tSOURCE\tVERSION")
		for _, name := range sortedKeys(mod.ModuleCalls) {
			mc := mod.ModuleCalls[name]
			fmt.Fprintf(writer, "%s\t%s\t%s\n", name, orDash(mc.Source), orDash(mc.VersionConstraint))
		}
	}

	if len(mod.Diagnostics) > 0 {
		fmt.Fprintln(writer, "\nSEVERITY\tSUMMARY\tLOCATION")
		for _, diag := range mod.Diagnostics {
			location := "-"
			if diag.Pos != nil {
				location = fmt.Sprintf("%s:%d", diag.Pos.Filename, diag.Pos.Line)
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\n", strings.ToUpper(string(diag.Severity)), diag.Summary, location)
		}
	}

	fmt.Fprintln(writer, "")
	fmt.Fprintf(writer, "Summary: %d managed resources, %d data resources, %d module calls, %d diagnostics\n",
		len(mod.ManagedResources), len(mod.DataResources), len(mod.ModuleCalls), len(mod.Diagnostics))

	return writer.Flush()
}

// formatStatic formats a static value for display in the table.
func formatStatic(v *models.StaticValue) string {
	if v == nil {
		return "-"
	}
	if !v.Known {
		return "<not static>"
	}
	if v.Value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v.Value)
}

// orDash substitutes a dash for empty values so table cells stay aligned.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// sortedKeys returns the map's keys in sorted order for stable output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultPrinter is the default implementation of the module printer
type DefaultPrinter struct{}

// PrintModule implements the printer interface
func (p DefaultPrinter) PrintModule(mod *models.Module, format OutputFormatType) error {
	return PrintModule(mod, format)
}
