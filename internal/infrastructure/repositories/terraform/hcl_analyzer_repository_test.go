//go:build unit

package terraform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tfRepo "github.com/rios0rios0/iacreport/internal/infrastructure/repositories/terraform"
)

func TestAnalyzerRepositoryAnalyzeFile(t *testing.T) {
	t.Parallel()

	t.Run("should count blocks and accept a well-formed file", func(t *testing.T) {
		t.Parallel()

		// given
		content := `provider "aws" {
  region = "eu-west-1"
}

variable "name" {
  description = "Name of the bucket"
  type        = string
}

resource "aws_s3_bucket" "this" {
  bucket = var.name
}

data "aws_caller_identity" "current" {}

output "arn" {
  description = "Bucket ARN"
  value       = aws_s3_bucket.this.arn
}
`
		analyzer := tfRepo.NewAnalyzerRepository()

		// when
		analysis := analyzer.AnalyzeFile("main.tf", content)

		// then
		assert.Equal(t, "main.tf", analysis.Path)
		assert.True(t, analysis.Formatted)
		assert.Equal(t, 1, analysis.Providers)
		assert.Equal(t, 1, analysis.Variables)
		assert.Equal(t, 1, analysis.Resources)
		assert.Equal(t, 1, analysis.DataSources)
		assert.Equal(t, 1, analysis.Outputs)
		assert.False(t, analysis.HasFindings())
	})

	t.Run("should report undocumented variables and outputs", func(t *testing.T) {
		t.Parallel()

		// given
		content := `variable "region" {}

output "id" {
  value = "x"
}
`
		analyzer := tfRepo.NewAnalyzerRepository()

		// when
		analysis := analyzer.AnalyzeFile("variables.tf", content)

		// then
		assert.Equal(t, []string{"region"}, analysis.UndocumentedVariables)
		assert.Equal(t, []string{"id"}, analysis.UndocumentedOutputs)
		assert.True(t, analysis.HasFindings())
	})

	t.Run("should detect files that are not canonically formatted", func(t *testing.T) {
		t.Parallel()

		// given
		content := "resource \"null_resource\" \"this\" {\ntriggers = {}\n}\n"
		analyzer := tfRepo.NewAnalyzerRepository()

		// when
		analysis := analyzer.AnalyzeFile("main.tf", content)

		// then
		assert.False(t, analysis.Formatted)
		assert.Empty(t, analysis.ParseErrors)
	})

	t.Run("should collect parse errors", func(t *testing.T) {
		t.Parallel()

		// given
		analyzer := tfRepo.NewAnalyzerRepository()

		// when
		analysis := analyzer.AnalyzeFile("broken.tf", `resource "aws_vpc" "this" {`)

		// then
		assert.NotEmpty(t, analysis.ParseErrors)
		assert.Zero(t, analysis.Resources)
		assert.True(t, analysis.HasFindings())
	})

	t.Run("should mark empty content as missing", func(t *testing.T) {
		t.Parallel()

		// given
		analyzer := tfRepo.NewAnalyzerRepository()

		// when
		analysis := analyzer.AnalyzeFile("main.tf", "")

		// then
		assert.True(t, analysis.Missing)
		assert.True(t, analysis.HasFindings())
	})

	t.Run("should flag modules without an exact version", func(t *testing.T) {
		t.Parallel()

		// given
		content := `module "local" {
  source = "./modules/network"
}

module "registry_pinned" {
  source  = "terraform-aws-modules/vpc/aws"
  version = "5.1.2"
}

module "registry_constraint" {
  source  = "terraform-aws-modules/vpc/aws"
  version = "~> 5.1"
}

module "registry_missing" {
  source = "terraform-aws-modules/eks/aws"
}

module "git_pinned" {
  source = "git::https://github.com/acme/modules.git//vpc?ref=v1.4.0"
}

module "git_branch" {
  source = "git::https://github.com/acme/modules.git//vpc?ref=main"
}
`
		analyzer := tfRepo.NewAnalyzerRepository()

		// when
		analysis := analyzer.AnalyzeFile("modules.tf", content)

		// then
		assert.Equal(t, 6, analysis.Modules)
		assert.Equal(t, []string{"registry_constraint", "registry_missing", "git_branch"}, analysis.UnpinnedModules)
	})
}
