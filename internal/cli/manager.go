package cli

import (
	"context"

	"teamboard/internal/cli/commands"

	"github.com/spf13/cobra"
)

// Manager handles CLI operations
type Manager struct {
	runtime commands.Runtime
	rootCmd *cobra.Command
}

// New creates a CLI manager whose commands draw their components from rt
func New(rt commands.Runtime) *Manager {
	m := &Manager{
		runtime: rt,
		rootCmd: createRootCommand(),
	}
	m.setupCommands()
	return m
}

// Root returns the root command
func (m *Manager) Root() *cobra.Command {
	return m.rootCmd
}

// Execute executes the CLI with the given arguments
func (m *Manager) Execute(args []string) error {
	return m.ExecuteWithContext(context.Background(), args)
}

// ExecuteWithContext executes the CLI with the given arguments and context
func (m *Manager) ExecuteWithContext(ctx context.Context, args []string) error {
	m.rootCmd.SetArgs(args)
	return m.rootCmd.ExecuteContext(ctx)
}

// setupCommands sets up all CLI commands
func (m *Manager) setupCommands() {
	m.rootCmd.AddCommand(commands.ServeCommand(m.runtime))
	m.rootCmd.AddCommand(commands.MigrateCommand(m.runtime))
	m.rootCmd.AddCommand(commands.TeamsCommand(m.runtime))
	m.rootCmd.AddCommand(commands.ProbeCommand(m.runtime))
	m.rootCmd.AddCommand(commands.VersionCommand())

	userCmd := &cobra.Command{
		Use:     "user",
		Short:   "User management commands",
		Aliases: []string{"users"},
	}
	for _, cmd := range commands.UserCommands(m.runtime) {
		userCmd.AddCommand(cmd)
	}
	m.rootCmd.AddCommand(userCmd)
}
