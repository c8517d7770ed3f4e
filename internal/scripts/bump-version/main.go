package main

import (
	"errors"
	"fmt"
	"os"

	app_info "github.com/robgonnella/netsweep/internal/app-info"
	"github.com/robgonnella/netsweep/internal/logger"
	"github.com/robgonnella/netsweep/internal/scripts/bump-version/version"
)

func main() {
	log := logger.New()

	args := os.Args[1:]
	if len(args) != 1 {
		log.Fatal().Err(errors.New("must provide version as argument")).Msg("")
	}

	versionStr := args[0]
	outFile := "internal/app-info/info.go"
	templatePath := "internal/templates/info.go.tmpl"

	git := version.NewGit()
	generator := version.NewTemplateGenerator(outFile, templatePath)

	execData := version.BumpData{
		Name:         app_info.NAME,
		Version:      versionStr,
		OutFile:      outFile,
		TemplatePath: templatePath,
	}

	if err := version.Bump(execData, generator, git); err != nil {
		log.Fatal().Err(err).Msg("failed to bump version")
	}

	fmt.Printf("Successfully bumped version to %s\n", versionStr)

	fmt.Println("To deploy run: \"git push <repo> <branch> --tags\"")
}
