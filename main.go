package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/robgonnella/netsweep/cli/commands"
	app_info "github.com/robgonnella/netsweep/internal/app-info"
	"github.com/robgonnella/netsweep/internal/config"
	"github.com/robgonnella/netsweep/internal/core"
	"github.com/robgonnella/netsweep/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRuntimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	logFile := path.Join(configDir, app_info.NAME+".log")

	configFile := path.Join(configDir, app_info.NAME+".yml")

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	// share run-time config globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	err := setRuntimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	conf, err := config.New(viper.GetString("config-file"))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Conf:       conf,
		CreateCore: core.CreateNewAppCore,
	})

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
