//go:build mage

package main

import (
	"database/sql"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	_ "github.com/mattn/go-sqlite3"

	"github.com/goserg/volunteerhub/internal/migrate"
)

const (
	jetOutput          = "gen"
	jetSchemaFile      = "jet.sqlite"
	serverBin          = "./bin/volunteerhub"
	serverMain         = "./cmd/volunteerhub"
	seedFile           = "configs/seed.yaml"
	coverProfile       = "coverage.out"
	defaultTestTimeout = "5m"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, serverMain)
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.RunV(serverBin, "serve")
}

// Seed loads the sample fixtures into the configured database
func Seed() error {
	mg.Deps(Build)
	return sh.RunV(serverBin, "seed", "-f", seedFile)
}

// Certs writes a self signed certificate for local TLS
func Certs() error {
	mg.Deps(Build)
	return sh.RunV(serverBin, "certgen")
}

// GenJet regenerates the jet models from a freshly migrated schema
func GenJet() error {
	mg.Deps(buildJetTool)
	mg.Deps(migrateSchema)
	defer os.Remove(jetSchemaFile)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", jetSchemaFile, "-path", jetOutput)
}

func migrateSchema() error {
	if err := os.Remove(jetSchemaFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	db, err := sql.Open("sqlite3", "file:"+jetSchemaFile)
	if err != nil {
		return err
	}
	defer db.Close()
	return migrate.Up(db)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs unit and http tests with the race detector
func Test() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "-race", "-timeout", defaultTestTimeout, "-coverprofile", coverProfile, "./...")
}
