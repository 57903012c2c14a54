package launcher

import (
	"io"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-ycash-params/flags"
	"github.com/rony4d/go-ycash-params/logging"
)

var log = logging.Module("launcher")

// newApp wires flags and commands. Output goes to w.
func newApp(w io.Writer) *cli.App {
	app := flags.NewApp("ycash-params", "Inspect the chain parameters of the Ycash networks")
	app.Writer = w
	app.Flags = flags.Merge(flags.CommonFlags(), flags.NetworkFlags())

	env := &environment{}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		if err := logging.Configure(cfg.Logging.logging(), os.Stderr); err != nil {
			return err
		}
		p, err := selectNetwork(cfg.Network)
		if err != nil {
			log.Errorf("Network selection failed: %v", err)
			return err
		}
		log.WithFields(logging.Fields{
			"network": p.Name,
			"preset":  cfg.Network.Preset,
		}).Debug("Launcher configured")

		env.cfg = cfg
		env.params = p
		env.out = newPrinter(ctx.App.Writer, cfg.Output)
		return nil
	}
	app.Commands = env.commands()
	return app
}

// Launch parses args, selects the network and runs the requested command.
func Launch(args []string) error {
	return newApp(os.Stdout).Run(args)
}
