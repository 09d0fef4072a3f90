package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfinspect/internal/models"
	"tfinspect/internal/report"
	"tfinspect/internal/report/mocks"
)

func sampleModule() *models.Module {
	mod := models.NewModule("modules/app")
	mod.RequiredCore = []string{">= 1.0"}
	mod.RequiredProviders["aws"] = &models.ProviderRequirement{
		Source:             "hashicorp/aws",
		VersionConstraints: []string{">= 2.7.0"},
	}
	mod.Variables["region"] = &models.Variable{
		Name:    "region",
		Type:    "string",
		Default: models.KnownValue("us-east-1"),
	}
	mod.Variables["derived"] = &models.Variable{
		Name:    "derived",
		Default: models.NotStatic("references var.other"),
	}
	mod.Outputs["id"] = &models.Output{
		Name:        "id",
		Description: "Instance ID",
		Value:       models.NotStatic("references aws_instance.web"),
	}
	mod.ManagedResources["aws_instance.web"] = &models.Resource{
		Mode:     models.ManagedResourceMode,
		Type:     "aws_instance",
		Name:     "web",
		Provider: "aws.west",
	}
	mod.DataResources["aws_ami.ubuntu"] = &models.Resource{
		Mode: models.DataResourceMode,
		Type: "aws_ami",
		Name: "ubuntu",
	}
	mod.ModuleCalls["network"] = &models.ModuleCall{
		Name:   "network",
		Source: "./modules/network",
	}
	mod.Diagnostics = models.Diagnostics{{
		Severity: models.SeverityWarning,
		Summary:  "Unsupported block type",
		Pos:      &models.SourcePos{Filename: "main.tf", Line: 12},
	}}
	return mod
}

func TestFprintModule_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.FprintModule(&buf, sampleModule(), report.OutputFormatTypeJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "modules/app", decoded["path"])

	variables, ok := decoded["variables"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, variables, "region")
	assert.Contains(t, variables, "derived")
}

func TestFprintModule_JSONDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, report.FprintModule(&first, sampleModule(), report.OutputFormatTypeJSON))
	require.NoError(t, report.FprintModule(&second, sampleModule(), report.OutputFormatTypeJSON))

	assert.Equal(t, first.String(), second.String())
}

func TestFprintModule_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.FprintModule(&buf, sampleModule(), report.OutputFormatTypeTABLE))
	out := buf.String()

	assert.Contains(t, out, "MODULE:")
	assert.Contains(t, out, "modules/app")
	assert.Contains(t, out, ">= 1.0")
	assert.Contains(t, out, "hashicorp/aws")
	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "<not static>")
	assert.Contains(t, out, "aws_instance.web")
	assert.Contains(t, out, "aws_ami.ubuntu")
	assert.Contains(t, out, "./modules/network")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "main.tf:12")
	assert.Contains(t, out, "Summary: 1 managed resources, 1 data resources, 1 module calls, 1 diagnostics")
}

func TestFprintModule_TableEmptyModule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.FprintModule(&buf, models.NewModule("."), report.OutputFormatTypeTABLE))
	out := buf.String()

	// Empty sections are omitted entirely.
	assert.NotContains(t, out, "VARIABLE")
	assert.NotContains(t, out, "RESOURCE")
	assert.Contains(t, out, "Summary: 0 managed resources, 0 data resources, 0 module calls, 0 diagnostics")
}

func TestFprintModule_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.FprintModule(&buf, sampleModule(), report.OutputFormatType("yaml"))
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestDefaultPrinter(t *testing.T) {
	var p report.IPrinter = report.DefaultPrinter{}
	assert.Error(t, p.PrintModule(sampleModule(), report.OutputFormatType("nope")))
}

func TestIPrinterMock(t *testing.T) {
	mod := sampleModule()

	printer := mocks.NewIPrinter(t)
	printer.On("PrintModule", mod, report.OutputFormatTypeTABLE).Return(nil).Once()

	var p report.IPrinter = printer
	assert.NoError(t, p.PrintModule(mod, report.OutputFormatTypeTABLE))
}
