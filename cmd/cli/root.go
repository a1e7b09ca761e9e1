// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"time"

	"nbproj/internal/config"
	"nbproj/internal/console"
	"nbproj/internal/logger"
	"nbproj/internal/runner"
	"nbproj/internal/tasks"
	"nbproj/internal/ui"

	"github.com/spf13/cobra"
)

const programName = "nbproj"

// app carries what every subcommand needs. Fields other than console and
// exit are filled in by loadConfig before a command runs.
type app struct {
	console *console.Printer
	exit    func(code int)

	// dir is the project directory; empty means the working directory.
	dir string
	cfg config.Config

	newExecutor func(a *app) tasks.Executor
	runMenu     func() (tasks.Command, bool, error)
	now         func() time.Time
}

func newApp() *app {
	return &app{
		console:     console.New(),
		exit:        os.Exit,
		newExecutor: defaultExecutor,
		runMenu:     ui.RunMenu,
		now:         time.Now,
	}
}

func defaultExecutor(a *app) tasks.Executor {
	e := runner.NewExecutor(a.console)
	e.Dir = a.dir
	e.Exit = a.exit
	return e
}

// RunCLI parses os.Args and runs the selected command.
func RunCLI() {
	logger.InitLogger()
	a := newApp()
	if err := execute(a, os.Args[1:]); err != nil {
		logger.Error("command failed", "error", err)
		a.console.Error("%v", err)
		a.exit(1)
	}
}

func execute(a *app, args []string) error {
	root := newRootCmd(a)
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   programName + " <command>",
		Short: "Project automation for a uv + Jupyter notebook project",
		Long: `Runs the routine tasks of a uv-managed notebook project: dependency setup,
Jupyter Lab, tests, formatting and linting.

Tool names and paths can be adjusted in an optional ` + config.FileName + ` file
in the project directory.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				fmt.Fprint(a.console.Out, tasks.Usage(programName))
				a.exit(1)
				return
			}
			c, err := tasks.ParseCommand(args[0])
			if err != nil {
				logger.Error("unknown command", "command", args[0])
				a.console.Error("Command '%s' not recognized", args[0])
				a.exit(1)
				return
			}
			a.dispatch(c)
		},
	}
	root.SetOut(a.console.Out)
	root.SetErr(a.console.Err)

	for _, c := range tasks.All() {
		root.AddCommand(a.taskCmd(c))
	}
	root.AddCommand(a.reportCmd())
	root.AddCommand(a.sampleCmd())
	root.AddCommand(a.menuCmd())
	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.dir)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) taskCmd(c tasks.Command) *cobra.Command {
	return &cobra.Command{
		Use:     c.String(),
		Aliases: c.Aliases(),
		Short:   c.Summary(),
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.dispatch(c)
		},
	}
}

func (a *app) dispatch(c tasks.Command) {
	d := &tasks.Dispatcher{
		Exec:    a.newExecutor(a),
		Config:  a.cfg,
		Console: a.console,
		Dir:     a.dir,
		Exit:    a.exit,
	}
	d.Run(c)
}
