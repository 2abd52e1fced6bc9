package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/NearCounter/internal/app"
	"github.com/Rorical/NearCounter/internal/models"
	"github.com/Rorical/NearCounter/internal/render/htmlview"
	"github.com/Rorical/NearCounter/internal/view"
)

var (
	headlessTimeout time.Duration
	headlessHTML    bool
	headlessSignIn  bool
)

// controlMessages maps control names accepted by press to their messages.
var controlMessages = map[string]models.Msg{
	"increment": models.IncrementClicked{},
	"decrement": models.DecrementClicked{},
	"reset":     models.ResetClicked{},
	"left-eye":  models.ToggleLeftEye{},
	"right-eye": models.ToggleRightEye{},
	"light":     models.ToggleLightIndicator{},
	"sign-in":   models.SignInClicked{},
	"sign-out":  models.SignOutClicked{},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch the counter and print the screen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHeadless(os.Stdout, nil); err != nil {
			log.Fatalf("Status failed: %v", err)
		}
	},
}

var pressCmd = &cobra.Command{
	Use:       "press [control]",
	Short:     "Press one control and print the resulting screen",
	Long:      `Mount the counter, wait for the first fetch, press the control and wait until the contract settles.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: controlNames(),
	Run: func(cmd *cobra.Command, args []string) {
		msg, ok := controlMessages[args[0]]
		if !ok {
			log.Fatalf("Unknown control '%s', expected one of %v", args[0], controlNames())
		}
		if err := runHeadless(os.Stdout, msg); err != nil {
			log.Fatalf("Press failed: %v", err)
		}
	},
}

func runHeadless(out io.Writer, press models.Msg) error {
	opts := appOptions
	if opts.LogFile == "" {
		opts.LogOutput = os.Stderr
	}

	application, err := app.NewApplication(opts)
	if err != nil {
		return err
	}
	defer application.Stop()

	gw := application.Gateway()
	if headlessSignIn {
		gw.SignIn()
	}

	ctx, cancel := context.WithTimeout(context.Background(), headlessTimeout)
	defer cancel()

	d := application.Headless(nil)
	defer d.Stop()

	d.Start()
	state, err := d.Settle(ctx)
	if err != nil {
		return err
	}

	if press != nil {
		if err := d.Dispatch(ctx, press); err != nil {
			return err
		}
		if state, err = d.Settle(ctx); err != nil {
			return err
		}
	}

	screen := view.Project(state, gw.AccountID())
	if headlessHTML {
		if err := htmlview.Render(out, view.Tree(screen)); err != nil {
			return err
		}
	} else {
		printScreen(out, screen)
	}

	if state.Loading {
		return fmt.Errorf("contract call did not complete, see the log for the error")
	}
	return nil
}

func printScreen(out io.Writer, screen view.Screen) {
	account := screen.AccountID
	if !screen.SignedIn {
		account = "(signed out)"
	}
	fmt.Fprintf(out, "Account: %s\n", account)
	fmt.Fprintf(out, "Counter: %s\n", screen.Display)
	fmt.Fprintf(out, "Mood:    %s\n", mood(screen))
	fmt.Fprintf(out, "Eyes:    left=%s right=%s\n", openClosed(screen.LeftEyeOpen), openClosed(screen.RightEyeOpen))
	fmt.Fprintf(out, "Light:   %t\n", screen.LightOn)
}

func mood(screen view.Screen) string {
	m := "sad"
	if screen.PositiveCount {
		m = "happy"
	}
	if screen.ShowTongue {
		m += ", tongue out"
	}
	return m
}

func openClosed(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func controlNames() []string {
	names := make([]string, 0, len(controlMessages))
	for name := range controlMessages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, c := range []*cobra.Command{statusCmd, pressCmd} {
		c.Flags().DurationVar(&headlessTimeout, "timeout", time.Minute, "give up waiting for the contract after this long")
		c.Flags().BoolVar(&headlessHTML, "html", false, "print the screen as HTML")
		c.Flags().BoolVar(&headlessSignIn, "sign-in", true, "sign in with the profile's account first")
		rootCmd.AddCommand(c)
	}
}
