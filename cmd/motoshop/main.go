package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/motoshop/internal/analytics"
	"github.com/MikeMC777/motoshop/internal/api"
	"github.com/MikeMC777/motoshop/internal/config"
	"github.com/MikeMC777/motoshop/internal/hostenv"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

// app holds the clients shared by every subcommand.
type app struct {
	cfg      config.Config
	host     *hostenv.Host
	api      *api.Client
	bikes    *motorcycle.Client
	users    *user.Client
	recorder *analytics.Recorder

	resolver *user.Resolver
	me       *user.User
	meErr    error
}

func (a *app) init(ctx context.Context) {
	a.cfg = config.Load()
	base := config.ResolveBaseURL(ctx, config.EnvSource("API_URL"), config.PollInterval, config.ResolveWait, config.DefaultAPIURL)
	a.host = hostenv.Parse(a.cfg.APIToken)
	a.api = api.New(base, a.host, a.cfg.RequestTimeout)
	a.bikes = motorcycle.NewClient(a.api)
	a.users = user.NewClient(a.api)
	a.recorder = analytics.NewRecorder(a.api, a.host, a.cfg.LaunchURL)

	// the API only answers registered users
	a.resolver = user.NewResolver(a.users, a.host)
	a.resolver.OnChange = func(s user.State) { log.Printf("[user] phase=%s", s.Phase) }
	a.me, a.meErr = a.resolver.ResolveOrCreate(ctx)
	if a.meErr != nil {
		log.Printf("[user] current user not available: %v", a.meErr)
	}
	a.recorder.RecordVisit(ctx, "")
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "motoshop",
		Short:         "Каталог мотоциклов из терминала",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.init(cmd.Context())
		},
	}
	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newMeCmd(a),
		newEditCmd(a),
		newStatusCmd(a),
		newStatsCmd(a),
	)
	return root
}

func main() {
	root := newRootCmd(&app{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, api.Message(err))
		os.Exit(1)
	}
}
