package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/inkstone-editor/inkstone/internal/log"
)

const (
	configBaseName   = "inkstone"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "INKSTONE"

	pluginFlagName   = "plugin"
	readOnlyFlagName = "read-only"
	formatFlagName   = "format"

	logFileKey       = "log.file"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"

	pluginConfigKey = "plugins"

	defaultLogFile       = ""
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(logFileKey, defaultLogFile)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(pluginConfigKey, []string{})

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
	}
}

// logOptions builds logger options from the effective configuration.
func logOptions() log.Options {
	opts := log.DefaultOptions()
	opts.Level = viper.GetString(logLevelKey)
	opts.File = viper.GetString(logFileKey)
	opts.MaxSizeMB = viper.GetInt(logMaxSizeKey)
	opts.MaxBackups = viper.GetInt(logMaxBackupsKey)
	return opts
}
