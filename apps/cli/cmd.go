package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/prachishaw/ClassCapsule/apps"
	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
	"github.com/prachishaw/ClassCapsule/core/theme"
	"github.com/prachishaw/ClassCapsule/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	nowFunc          = time.Now          // mockable

	errHelp                 = errors.New("help provided")
	errNotLoggedIn          = errors.New("not logged in: run `login` or `demo ROLE` first")
	errAuthenticationFailed = errors.New("authentication failed")
)

type commandLine struct {
	logger        core.Logger
	gate          *user.Gate
	courses       *course.Service
	theme         *theme.Service
	report        dashboard.Report
	validate      *validator.Validate
	translator    ut.Translator
	upcomingLimit int
	out           io.Writer
}

func (cli *commandLine) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "classcapsule",
		Short:         "ClassCapsule dashboard on the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return errHelp
		},
	}
	cmd.SetOut(cli.out)
	cmd.SetErr(cli.out)

	cli.addAuthCommands(cmd)
	cli.addCourseCommands(cmd)
	cli.addCalendarCommands(cmd)
	cli.addThemeCommand(cmd)
	return cmd
}

// run executes the command named by args[1:]; args[0] is the program name.
func (cli *commandLine) run(args []string) error {
	cmd := cli.root()
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

// protected wraps a command body that needs an authenticated identity.
func (cli *commandLine) protected(fn func(cmd *cobra.Command, args []string, id user.Identity) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, ok := cli.gate.Current()
		if !ok {
			return errNotLoggedIn
		}
		return fn(cmd, args, id)
	}
}

func (cli *commandLine) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) println(args ...interface{}) {
	_, _ = fmt.Fprintln(cli.out, args...)
}

// validationError flattens validator errors into one "field: message" line per field.
func (cli *commandLine) validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := core.TranslateErrors(verrs, cli.translator)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, name+": "+fields[name])
	}
	return apps.NewArgumentError(strings.Join(msgs, "\n"))
}
