package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GOSIDEBAR_SERVER_PORT
const EnvPrefix = "GOSIDEBAR"

// ServerConfig contains all of the server settings defined in the TOML file
type ServerConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	WebDir         string //directory holding app.wasm and wasm_exec.js
	UploadsDir     string //directory the logo is served from
	LogLevel       string
	LogOutput      string
	LogFile        string
	FrontEndConfig
}

// FrontEndConfig stores the branding handed to the browser app
type FrontEndConfig struct {
	Title    string
	LogoPath string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.webDir", "web")
	v.SetDefault("server.uploadsDir", "public/lovable-uploads")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.file", "goSidebar.log")
	v.SetDefault("frontend.title", "OpenArt")
	v.SetDefault("frontend.logoPath", "/lovable-uploads/407e5ec8-9b67-42ee-acf0-b238e194aa64.png")
}

// Load reads serverConfig.toml from the given directories (config/ and . when
// none are given). A missing file is not an error; defaults and environment
// overrides still apply.
func Load(v *viper.Viper, dirs ...string) (ServerConfig, error) {
	setDefaults(v)
	if len(dirs) == 0 {
		dirs = []string{"config/", "."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	v.SetConfigName("serverConfig")
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return ServerConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := ServerConfig{
		ListenAddrIP:   v.GetString("server.addr"),
		ListenAddrPort: v.GetString("server.port"),
		WebDir:         filepath.ToSlash(v.GetString("server.webDir")),
		UploadsDir:     filepath.ToSlash(v.GetString("server.uploadsDir")),
		LogLevel:       v.GetString("logging.level"),
		LogOutput:      v.GetString("logging.output"),
		LogFile:        v.GetString("logging.file"),
		FrontEndConfig: FrontEndConfig{
			Title:    v.GetString("frontend.title"),
			LogoPath: v.GetString("frontend.logoPath"),
		},
	}
	if !strings.HasPrefix(cfg.LogoPath, "/") {
		return ServerConfig{}, fmt.Errorf("frontend.logoPath must be an absolute URL path, got %q", cfg.LogoPath)
	}
	return cfg, nil
}

// SetupServer does the initial configuration using the global viper instance
func SetupServer(dirs ...string) (ServerConfig, *slog.Logger, error) {
	cfg, err := Load(viper.GetViper(), dirs...)
	if err != nil {
		return cfg, nil, err
	}
	logger := setupLogging(cfg)
	logger.Info("Base Logger is setup!", "level", cfg.LogLevel, "output", cfg.LogOutput)
	return cfg, logger, nil
}

// ParseLevel maps the configured level name to a slog level, defaulting to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func setupLogging(cfg ServerConfig) *slog.Logger {
	var logWriter io.Writer
	if cfg.LogOutput == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(cfg.LogFile))
		if err != nil {
			fmt.Println("Unable to create log file path: ", err)
			logPath = "output.log"
		}
		logFile, err := os.Create(logPath)
		if err != nil {
			fmt.Println("Unable to create log file: ", err)
			logWriter = os.Stdout
		} else {
			logWriter = logFile
			fmt.Println("Logging to file: ", logPath)
		}
	} else {
		logWriter = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	}
	handler := slog.NewTextHandler(logWriter, opts)
	return slog.New(handler)
}
