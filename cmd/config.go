package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "auto-i18n"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	includeFlagName  = "include"
	excludeFlagName  = "exclude"
	localesFlagName  = "locales"
	sourceFlagName   = "source"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	langFlagName     = "lang"
	keyFlagName      = "key"
	modelFlagName    = "model"
	parallelFlagName = "parallel"
	dryRunFlagName   = "dry-run"

	includeConfigKey    = "paths.include"
	excludeConfigKey    = "paths.exclude"
	localesDirKey       = "locales.dir"
	sourceLangKey       = "locales.source"
	targetLangsKey      = "locales.targets"
	translateModelKey   = "translate.model"
	translateBaseURLKey = "translate.base_url"
	translateAPIKeyKey  = "translate.api_key"
	translateParallel   = "translate.parallel"
	translateTimeoutKey = "translate.timeout"

	defaultLocalesDir        = "./locales"
	defaultSourceLang        = "en"
	defaultTranslateParallel = 1
	defaultTranslateTimeout  = 120

	envPrefix    = "AUTOI18N"
	apiKeyEnvVar = "OPENAI_API_KEY"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".auto-i18n.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultInclude = []string{"**/*.{js,jsx,ts,tsx}"}
	defaultExclude = []string{"**/node_modules/**", "**/.next/**", "**/dist/**"}
)

var globalLogger *slog.Logger

func init() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(includeConfigKey, defaultInclude)
	viper.SetDefault(excludeConfigKey, defaultExclude)
	viper.SetDefault(localesDirKey, defaultLocalesDir)
	viper.SetDefault(sourceLangKey, defaultSourceLang)
	viper.SetDefault(targetLangsKey, []string{})

	viper.SetDefault(translateModelKey, adapter.DefaultTranslatorModel)
	viper.SetDefault(translateBaseURLKey, adapter.DefaultTranslatorBaseURL)
	viper.SetDefault(translateAPIKeyKey, "")
	viper.SetDefault(translateParallel, defaultTranslateParallel)
	viper.SetDefault(translateTimeoutKey, defaultTranslateTimeout)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// resolveAPIKey applies the key precedence: flag, environment, config file.
func resolveAPIKey(flagValue string, lookupEnv func(string) (string, bool)) string {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key
	}

	if key, ok := lookupEnv(apiKeyEnvVar); ok && strings.TrimSpace(key) != "" {
		return strings.TrimSpace(key)
	}

	return strings.TrimSpace(viper.GetString(translateAPIKeyKey))
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
