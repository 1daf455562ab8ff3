package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/keyswarm/registration-client/api"
	"github.com/keyswarm/registration-client/clients"
	"github.com/keyswarm/registration-client/cmd/flags"
	"github.com/keyswarm/registration-client/identity"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "register client",
		Usage: "publish an identity and its public key to a local directory node",
		Flags: []cli.Flag{
			flags.PortFlag,
			flags.LogJSONFlag,
			flags.LogDebugFlag,
			flags.LogUIDFlag,
			flags.LogServiceFlag,
		},
		Commands: []*cli.Command{
			&cli.Command{
				Name:        "register",
				Usage:       "register a name and public key with the directory",
				Description: "Rejections are printed and exit zero; transport failures are fatal.",
				Flags: []cli.Flag{
					flags.NameFlag,
					flags.KeyFlag,
				},
				Action: func(cCtx *cli.Context) error {
					c, err := NewClientConfig(cCtx)
					if err != nil {
						return err
					}
					return c.Register()
				},
			},
			&cli.Command{
				Name:  "keygen",
				Usage: "generate a signing key seed and its public key",
				Action: func(cCtx *cli.Context) error {
					return Keygen(os.Stdout)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type Client struct {
	Identity *identity.Identity
	Provider api.RegistrationProvider
	Log      *slog.Logger
	Out      io.Writer
}

func NewClientConfig(cCtx *cli.Context) (*Client, error) {
	logger := flags.SetupLogger(cCtx)

	name := cCtx.String(flags.NameFlag.Name)
	if name == "" {
		name = fmt.Sprintf("anon-%.8s", uuid.Must(uuid.NewRandom()).String())
		logger.Info("no identity name configured, generated one", "name", name)
	}

	var id *identity.Identity
	var err error
	if seed := cCtx.String(flags.KeyFlag.Name); seed != "" {
		id, err = identity.FromSeed(name, seed)
	} else {
		id, err = identity.New(name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not assemble identity: %w", err)
	}

	provider, err := clients.NewRegistrationClient(cCtx.Int(flags.PortFlag.Name))
	if err != nil {
		return nil, err
	}

	return &Client{
		Identity: id,
		Provider: provider,
		Log:      logger,
		Out:      os.Stdout,
	}, nil
}

func (c *Client) Register() error {
	outcome, err := c.Provider.Register(c.Identity.Name, c.Identity.PublicKey())
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if !outcome.OK {
		// Rejection is not fatal for the process; report the diagnostic and
		// terminate normally.
		fmt.Fprintln(c.Out, outcome.Diagnostic.String())
		c.Log.Warn("directory rejected registration", "status", outcome.Status)
		return nil
	}

	c.Log.Info("registered", "name", c.Identity.Name)
	return nil
}

func Keygen(out io.Writer) error {
	id, err := identity.New("")
	if err != nil {
		return err
	}

	encodedKeypair, _ := json.Marshal(map[string]string{
		"seed":       id.Seed(),
		"public_key": id.PublicKey(),
	})
	fmt.Fprintln(out, string(encodedKeypair))
	return nil
}
