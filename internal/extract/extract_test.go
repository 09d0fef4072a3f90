package extract

import (
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfinspect/internal/models"
)

// extractSource parses src in the syntax implied by filename and extracts
// its fragment, the way the inspection service does for real files.
func extractSource(t *testing.T, filename, src string) *Fragment {
	t.Helper()
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(filename, ".json") {
		file, diags = parser.ParseJSON([]byte(src), filename)
	} else {
		file, diags = parser.ParseHCL([]byte(src), filename)
	}
	return File(file, filename, models.DiagnosticsHCL(diags))
}

func TestFile_TerraformBlock(t *testing.T) {
	frag := extractSource(t, "versions.tf", `
terraform {
  required_version = ">= 1.1.0"

  required_providers {
    aws = {
      source                = "hashicorp/aws"
      version               = ">= 2.7.0"
      configuration_aliases = [aws.alternate]
    }
    random = "~> 3.0"
  }

  backend "s3" {}
}
`)

	assert.Empty(t, frag.Diagnostics)
	assert.Equal(t, []string{">= 1.1.0"}, frag.RequiredCore)

	require.Len(t, frag.RequiredProviders, 2)

	aws := frag.RequiredProviders[0]
	assert.Equal(t, "aws", aws.Name)
	assert.Equal(t, "hashicorp/aws", aws.Requirement.Source)
	assert.Equal(t, []string{">= 2.7.0"}, aws.Requirement.VersionConstraints)
	require.Len(t, aws.Requirement.ConfigurationAliases, 1)
	assert.Equal(t, "aws", aws.Requirement.ConfigurationAliases[0].Name)
	assert.Equal(t, "alternate", aws.Requirement.ConfigurationAliases[0].Alias)

	random := frag.RequiredProviders[1]
	assert.Equal(t, "random", random.Name)
	assert.Equal(t, "", random.Requirement.Source)
	assert.Equal(t, []string{"~> 3.0"}, random.Requirement.VersionConstraints)
}

func TestFile_ExperimentsRecognizedAndIgnored(t *testing.T) {
	frag := extractSource(t, "versions.tf", `
terraform {
  experiments      = [example]
  required_version = ">= 1.0"
}
`)

	assert.Empty(t, frag.Diagnostics)
	assert.Equal(t, []string{">= 1.0"}, frag.RequiredCore)
}

func TestFile_RequiredVersionDuplicatesKeptInOrder(t *testing.T) {
	frag := extractSource(t, "versions.tf", `
terraform {
  required_version = ">= 1.0"
}
terraform {
  required_version = ">= 1.0"
}
`)

	assert.Equal(t, []string{">= 1.0", ">= 1.0"}, frag.RequiredCore)
}

func TestFile_InvalidRequiredProvidersEntry(t *testing.T) {
	frag := extractSource(t, "versions.tf", `
terraform {
  required_providers {
    broken = ["not", "valid"]
    aws    = { source = "hashicorp/aws" }
  }
}
`)

	require.True(t, frag.Diagnostics.HasErrors())
	assert.Equal(t, "Invalid required_providers entry", frag.Diagnostics[0].Summary)

	// The malformed entry is skipped; its sibling still decodes.
	require.Len(t, frag.RequiredProviders, 1)
	assert.Equal(t, "aws", frag.RequiredProviders[0].Name)
}

func TestFile_InvalidVersionConstraintWarns(t *testing.T) {
	frag := extractSource(t, "versions.tf", `
terraform {
  required_version = "not a constraint"
}
`)

	// The raw string is still recorded.
	assert.Equal(t, []string{"not a constraint"}, frag.RequiredCore)

	require.Len(t, frag.Diagnostics, 1)
	assert.Equal(t, models.SeverityWarning, frag.Diagnostics[0].Severity)
	assert.Equal(t, "Invalid version constraint", frag.Diagnostics[0].Summary)
}

func TestFile_Variable(t *testing.T) {
	frag := extractSource(t, "variables.tf", `
variable "region" {
  type        = string
  description = "AWS region"
  default     = "us-east-1"
}

variable "tags" {
  default = { team = "platform" }
}

variable "secret" {
  sensitive = true
}
`)

	assert.Empty(t, frag.Diagnostics)
	require.Len(t, frag.Variables, 3)

	region := frag.Variables[0]
	assert.Equal(t, "region", region.Name)
	assert.Equal(t, "string", region.Type)
	assert.Equal(t, "AWS region", region.Description)
	require.NotNil(t, region.Default)
	assert.True(t, region.Default.Known)
	assert.Equal(t, "us-east-1", region.Default.Value)

	tags := frag.Variables[1]
	require.NotNil(t, tags.Default)
	assert.Equal(t, map[string]any{"team": "platform"}, tags.Default.Value)

	assert.True(t, frag.Variables[2].Sensitive)
}

func TestFile_VariableComplexType(t *testing.T) {
	frag := extractSource(t, "variables.tf", `
variable "subnets" {
  type = list(object({ cidr = string }))
}
`)

	require.Len(t, frag.Variables, 1)
	// Type expressions are recorded as raw source text, not interpreted.
	assert.Equal(t, "list(object({ cidr = string }))", frag.Variables[0].Type)
}

func TestFile_VariableNonStaticDefault(t *testing.T) {
	frag := extractSource(t, "variables.tf", `
variable "derived" {
  default = var.other
}
`)

	require.Len(t, frag.Variables, 1)
	def := frag.Variables[0].Default
	require.NotNil(t, def)
	assert.False(t, def.Known)
	assert.Equal(t, "references var.other", def.Reason)

	require.Len(t, frag.Diagnostics, 1)
	assert.Equal(t, models.SeverityWarning, frag.Diagnostics[0].Severity)
	assert.Equal(t, "Variable default is not statically known", frag.Diagnostics[0].Summary)
}

func TestFile_NonStaticDescriptionDropped(t *testing.T) {
	frag := extractSource(t, "variables.tf", `
variable "region" {
  description = var.doc
  default     = "us-east-1"
}
`)

	require.Len(t, frag.Diagnostics, 1)
	assert.Equal(t, models.SeverityWarning, frag.Diagnostics[0].Severity)
	assert.Equal(t, "Argument is not statically known", frag.Diagnostics[0].Summary)

	require.Len(t, frag.Variables, 1)
	assert.Equal(t, "", frag.Variables[0].Description)
	require.NotNil(t, frag.Variables[0].Default)
	assert.True(t, frag.Variables[0].Default.Known)
}

func TestFile_NonStaticModuleSourceDropped(t *testing.T) {
	frag := extractSource(t, "main.tf", `
module "network" {
  source = var.src
}
`)

	require.Len(t, frag.Diagnostics, 1)
	assert.Equal(t, models.SeverityWarning, frag.Diagnostics[0].Severity)
	assert.False(t, frag.Diagnostics.HasErrors())

	require.Len(t, frag.ModuleCalls, 1)
	assert.Equal(t, "", frag.ModuleCalls[0].Source)
}

func TestFile_Output(t *testing.T) {
	frag := extractSource(t, "outputs.tf", `
output "instance_id" {
  description = "ID of the instance"
  value       = aws_instance.web.id
  sensitive   = true
}

output "static" {
  value = "fixed"
}
`)

	// Output values referencing resources are expected; no warning.
	assert.Empty(t, frag.Diagnostics)
	require.Len(t, frag.Outputs, 2)

	first := frag.Outputs[0]
	assert.Equal(t, "instance_id", first.Name)
	assert.Equal(t, "ID of the instance", first.Description)
	assert.True(t, first.Sensitive)
	require.NotNil(t, first.Value)
	assert.False(t, first.Value.Known)

	second := frag.Outputs[1]
	require.NotNil(t, second.Value)
	assert.True(t, second.Value.Known)
	assert.Equal(t, "fixed", second.Value.Value)
}

func TestFile_ProviderConfigs(t *testing.T) {
	frag := extractSource(t, "providers.tf", `
provider "aws" {
  region = "us-east-1"
}

provider "aws" {
  alias   = "west"
  region  = "us-west-2"
  version = "~> 4.0"
}
`)

	assert.Empty(t, frag.Diagnostics)
	require.Len(t, frag.ProviderConfigs, 2)

	assert.Equal(t, "aws", frag.ProviderConfigs[0].Key())
	assert.Equal(t, "", frag.ProviderConfigs[0].Alias)

	west := frag.ProviderConfigs[1]
	assert.Equal(t, "aws.west", west.Key())
	assert.Equal(t, "west", west.Alias)
	assert.Equal(t, "~> 4.0", west.VersionConstraint)
}

func TestFile_Resources(t *testing.T) {
	frag := extractSource(t, "main.tf", `
resource "aws_instance" "web" {
  instance_type = "t2.micro"
  provider      = aws.west
  count         = 3
  depends_on    = [aws_vpc.main, module.network]

  provisioner "local-exec" {}
  provisioner "file" {}

  lifecycle {
    create_before_destroy = true
  }
}

data "aws_ami" "ubuntu" {
  for_each = var.regions
}
`)

	assert.Empty(t, frag.Diagnostics)

	require.Len(t, frag.ManagedResources, 1)
	web := frag.ManagedResources[0]
	assert.Equal(t, models.ManagedResourceMode, web.Mode)
	assert.Equal(t, "aws_instance.web", web.Address())
	assert.Equal(t, "aws.west", web.Provider)
	assert.Equal(t, models.RepetitionCount, web.Repetition)
	assert.Equal(t, []string{"aws_vpc.main", "module.network"}, web.DependsOn)
	assert.Equal(t, []string{"local-exec", "file"}, web.Provisioners)

	require.Len(t, frag.DataResources, 1)
	ubuntu := frag.DataResources[0]
	assert.Equal(t, models.DataResourceMode, ubuntu.Mode)
	assert.Equal(t, "aws_ami.ubuntu", ubuntu.Address())
	assert.Equal(t, models.RepetitionForEach, ubuntu.Repetition)
	assert.Equal(t, "", ubuntu.Provider)
}

func TestFile_QuotedProviderReference(t *testing.T) {
	frag := extractSource(t, "main.tf", `
resource "aws_instance" "old" {
  provider = "aws.legacy"
}
`)

	assert.Empty(t, frag.Diagnostics)
	require.Len(t, frag.ManagedResources, 1)
	assert.Equal(t, "aws.legacy", frag.ManagedResources[0].Provider)
}

func TestFile_CountAndForEachConflict(t *testing.T) {
	frag := extractSource(t, "main.tf", `
resource "aws_instance" "web" {
  count    = 1
  for_each = var.things
}
`)

	require.True(t, frag.Diagnostics.HasErrors())
	assert.Equal(t, "Invalid combination of count and for_each", frag.Diagnostics[0].Summary)

	// count wins so the resource stays usable.
	require.Len(t, frag.ManagedResources, 1)
	assert.Equal(t, models.RepetitionCount, frag.ManagedResources[0].Repetition)
}

func TestFile_DuplicateLifecycleBlock(t *testing.T) {
	frag := extractSource(t, "main.tf", `
resource "aws_instance" "web" {
  lifecycle {}
  lifecycle {}
}
`)

	require.True(t, frag.Diagnostics.HasErrors())
	assert.Equal(t, "Duplicate lifecycle block", frag.Diagnostics[0].Summary)
	// The block itself still decodes.
	assert.Len(t, frag.ManagedResources, 1)
}

func TestFile_ModuleCall(t *testing.T) {
	frag := extractSource(t, "main.tf", `
module "network" {
  source  = "terraform-aws-modules/vpc/aws"
  version = "~> 5.0"
  cidr    = var.cidr
}

module "no_source" {
  for_each = var.envs
}
`)

	require.Len(t, frag.ModuleCalls, 2)

	network := frag.ModuleCalls[0]
	assert.Equal(t, "network", network.Name)
	assert.Equal(t, "terraform-aws-modules/vpc/aws", network.Source)
	assert.Equal(t, "~> 5.0", network.VersionConstraint)
	assert.Equal(t, models.RepetitionNone, network.Repetition)

	// A module call without a source is an error but is still recorded.
	require.True(t, frag.Diagnostics.HasErrors())
	noSource := frag.ModuleCalls[1]
	assert.Equal(t, "no_source", noSource.Name)
	assert.Equal(t, "", noSource.Source)
	assert.Equal(t, models.RepetitionForEach, noSource.Repetition)
}

func TestFile_UnknownTopLevelBlockWarns(t *testing.T) {
	frag := extractSource(t, "main.tf", `
widget "x" {}

resource "aws_instance" "web" {}
`)

	require.Len(t, frag.Diagnostics, 1)
	assert.Equal(t, models.SeverityWarning, frag.Diagnostics[0].Severity)
	assert.Equal(t, "Unsupported block type", frag.Diagnostics[0].Summary)

	// The unknown block does not affect its siblings.
	assert.Len(t, frag.ManagedResources, 1)
}

func TestFile_ResourceMissingNameLabel(t *testing.T) {
	frag := extractSource(t, "main.tf", `
resource "aws_instance" {}

variable "region" {}
`)

	// One error for the malformed block, nothing added to the resources,
	// and the rest of the file still extracts.
	assert.True(t, frag.Diagnostics.HasErrors())
	assert.Empty(t, frag.ManagedResources)
	assert.Len(t, frag.Variables, 1)
}

func TestFile_LocalsAreSilentlySkipped(t *testing.T) {
	frag := extractSource(t, "main.tf", `
locals {
  name = "web-${var.env}"
}
`)

	assert.Empty(t, frag.Diagnostics)
}

func TestFile_ParseDiagsScopedToFile(t *testing.T) {
	frag := extractSource(t, "broken.tf", `resource "aws_instance" {{{`)

	assert.Equal(t, "broken.tf", frag.Filename)
	assert.True(t, frag.Diagnostics.HasErrors())
}

func TestFile_JSONSyntaxEquivalence(t *testing.T) {
	native := extractSource(t, "main.tf", `
resource "aws_instance" "x" {
  count = 2
}

variable "region" {
  default = "us-east-1"
}
`)
	jsonFrag := extractSource(t, "main.tf.json", `{
  "resource": {
    "aws_instance": {
      "x": {
        "count": 2
      }
    }
  },
  "variable": {
    "region": {
      "default": "us-east-1"
    }
  }
}`)

	assert.Empty(t, native.Diagnostics)
	assert.Empty(t, jsonFrag.Diagnostics)

	require.Len(t, native.ManagedResources, 1)
	require.Len(t, jsonFrag.ManagedResources, 1)

	// The two syntaxes decode to identical fragments except provenance.
	n, j := native.ManagedResources[0], jsonFrag.ManagedResources[0]
	assert.Equal(t, n.Address(), j.Address())
	assert.Equal(t, n.Mode, j.Mode)
	assert.Equal(t, n.Repetition, j.Repetition)

	require.Len(t, jsonFrag.Variables, 1)
	assert.Equal(t, native.Variables[0].Name, jsonFrag.Variables[0].Name)
	assert.Equal(t, native.Variables[0].Default, jsonFrag.Variables[0].Default)
}
