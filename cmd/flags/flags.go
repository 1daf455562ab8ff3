// Package flags defines the command-line flags shared by the keyswarm
// commands and wires them into logger setup.
package flags

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/keyswarm/registration-client/common"
	"github.com/urfave/cli/v2"
)

var PortFlag = &cli.IntFlag{
	Name:    "port",
	Value:   10881,
	Usage:   "local port the directory node listens on",
	EnvVars: []string{"KEYSWARM_PORT"},
}

var NameFlag = &cli.StringFlag{
	Name:    "name",
	Usage:   "identity name to publish; a random one is generated when omitted",
	EnvVars: []string{"USERNAME"},
}

var KeyFlag = &cli.StringFlag{
	Name:    "key",
	Usage:   "base64-encoded ed25519 signing key seed; a fresh key is generated when omitted",
	EnvVars: []string{"SIGNING_KEY"},
}

var LogJSONFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}

var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}

var LogUIDFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}

var LogServiceFlag = &cli.StringFlag{
	Name:  "log-service",
	Value: "register-client",
	Usage: "add 'service' tag to logs",
}

// SetupLogger builds the process logger from the log-* flags.
func SetupLogger(cCtx *cli.Context) *slog.Logger {
	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   cCtx.Bool(LogDebugFlag.Name),
		JSON:    cCtx.Bool(LogJSONFlag.Name),
		Service: cCtx.String(LogServiceFlag.Name),
		Version: common.Version,
	})

	if cCtx.Bool(LogUIDFlag.Name) {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}
