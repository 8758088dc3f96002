package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	config "github.com/drummonds/goSidebar/config"
	engine "github.com/drummonds/goSidebar/engine"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	engine.Logger = Logger
}

// bindFlags registers the command-line flags and binds them over the config file
func bindFlags(fs *pflag.FlagSet, v *viper.Viper) (configDir *string, err error) {
	configDir = fs.String("config", "", "Directory containing serverConfig.toml")
	fs.String("addr", "", "Address to listen on (empty binds all addresses)")
	fs.String("port", "", "Port to listen on")
	fs.String("log-level", "", "Log level: debug, info, warn or error")

	for key, flag := range map[string]string{
		"server.addr":   "addr",
		"server.port":   "port",
		"logging.level": "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return configDir, nil
}

func main() {
	configDir, err := bindFlags(pflag.CommandLine, viper.GetViper())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	pflag.Parse()

	var dirs []string
	if *configDir != "" {
		dirs = append(dirs, *configDir)
	}
	serverConfig, logger, err := config.SetupServer(dirs...)
	if err != nil {
		fmt.Println("Unable to load configuration:", err)
		os.Exit(1)
	}
	injectGlobals(logger) //inject the logger into all of the packages

	Logger.Info("Setting up go-app WASM UI")
	serverHandler := engine.NewServerHandler(serverConfig)
	serverHandler.RegisterRoutes()
	e := serverHandler.Echo

	if serverConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	Logger.Info("Starting HTTP server")
	if err := listen(serverConfig.ListenAddrIP, serverConfig.ListenAddrPort, maxStartAttempts, e.Start); err != nil {
		Logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// maxStartAttempts bounds how many consecutive ports listen tries
const maxStartAttempts = 5

// listen calls start on ip:port, moving to the next port while the current one
// is already in use. A clean shutdown is not an error.
func listen(ip, port string, attempts int, start func(addr string) error) error {
	startPort := port
	for attempt := 1; attempt <= attempts; attempt++ {
		addr := fmt.Sprintf("%s:%s", ip, port)
		Logger.Info("Attempting to start server", "address", addr, "attempt", attempt)

		err := start(addr)
		switch {
		case err == nil, errors.Is(err, http.ErrServerClosed):
			return nil
		case !isAddressInUse(err):
			return fmt.Errorf("starting server on %s: %w", addr, err)
		}

		Logger.Warn("Port already in use, trying next port",
			"port", port,
			"attempt", attempt,
			"max_attempts", attempts)
		if port, err = nextPort(port); err != nil {
			return err
		}
	}
	return fmt.Errorf("no free port in %d attempts starting at %s", attempts, startPort)
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "address already in use")
}

// nextPort returns port+1
func nextPort(port string) (string, error) {
	var portNum int
	if _, err := fmt.Sscanf(port, "%d", &portNum); err != nil {
		return "", fmt.Errorf("parsing port %q: %w", port, err)
	}
	return fmt.Sprintf("%d", portNum+1), nil
}
