package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/automation"
	"github.com/maheshrc27/adspark/internal/dashboard"
	"github.com/maheshrc27/adspark/pkg/utils"
	"github.com/spf13/cobra"
)

type options struct {
	url      string
	username string
	password string
	timeout  time.Duration
}

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "adspark",
		Short:         "Review, approve and create AdSpark posts from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.url, "url", cfg.DashboardURL, "dashboard base URL")
	root.PersistentFlags().StringVarP(&opts.username, "username", "u", cfg.LoginUsername, "login username")
	root.PersistentFlags().StringVarP(&opts.password, "password", "p", cfg.LoginPassword, "login password")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(newShellCmd(cfg, opts), newListCmd(opts), newGenSecretCmd())
	return root
}

func newShellCmd(cfg *config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Log in and work with posts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			client, err := login(cmd.Context(), opts, in, cmd)
			if err != nil {
				return err
			}

			hooks := automation.NewClient(cfg.Webhooks)
			d := dashboard.New(client, hooks)
			defer func() {
				d.Close()
				hooks.Wait()
			}()

			if err := d.Refresh(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Could not load posts: %v\n", err)
			}

			sh := &shell{d: d, client: client, in: in, out: cmd.OutOrStdout()}
			return sh.run(cmd.Context())
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the posts of one tab and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			client, err := login(cmd.Context(), opts, in, cmd)
			if err != nil {
				return err
			}

			d := dashboard.New(client, nil)
			defer d.Close()
			if err := d.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("could not load posts: %w", err)
			}
			d.SetTab(dashboard.Tab(tab))

			printPosts(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(dashboard.TabAll), "draft, published or all")
	return cmd
}

func newGenSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value suitable for SESSION_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := utils.GenerateRandomKey(32)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

// login prompts for whichever credential was not given by flag or environment.
func login(ctx context.Context, opts *options, in *bufio.Scanner, cmd *cobra.Command) (*dashboard.PostsClient, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := dashboard.NewPostsClient(opts.url, opts.timeout)
	if err != nil {
		return nil, err
	}

	username, password := opts.username, opts.password
	if username == "" {
		username = prompt(in, cmd.OutOrStdout(), "Username: ")
	}
	if password == "" {
		password = prompt(in, cmd.OutOrStdout(), "Password: ")
	}

	if err := client.Login(ctx, username, password); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return client, nil
}
