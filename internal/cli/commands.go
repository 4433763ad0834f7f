package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathgroup/internal/version"
	"github.com/arthur-debert/pathgroup/pkg/config"
	"github.com/arthur-debert/pathgroup/pkg/envstore"
	"github.com/arthur-debert/pathgroup/pkg/envsync"
	"github.com/arthur-debert/pathgroup/pkg/filesystem"
	"github.com/arthur-debert/pathgroup/pkg/groups"
	"github.com/arthur-debert/pathgroup/pkg/logging"
	"github.com/arthur-debert/pathgroup/pkg/paths"
	"github.com/arthur-debert/pathgroup/pkg/registry"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "pathgroup",
		Short: "Manage named groups of directories on your PATH",
		Long: `pathgroup keeps a registry of directories tagged with group names and
adds or removes whole groups from the PATH variable in one command.

Register directories once with add-to-path, then toggle entire toolchains
on and off with add-group-to-path and remove-group-from-path.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAddToPathCmd())
	rootCmd.AddCommand(newAddGroupCmd())
	rootCmd.AddCommand(newRemoveGroupCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

// initOperations wires the registry and environment sync from the tool
// settings and directory layout.
func initOperations() (*groups.Operations, error) {
	p := paths.New()

	settings, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	store, err := envstore.ForScope(envstore.Scope(settings.Env.Scope))
	if err != nil {
		return nil, err
	}

	registryPath := settings.Registry.File
	if registryPath == "" {
		registryPath = p.RegistryPath()
	}

	reg := registry.New(filesystem.NewOS(), registryPath)
	env := envsync.New(store, settings.Env.Variable)

	log.Debug().
		Str("registry", registryPath).
		Str("variable", settings.Env.Variable).
		Str("scope", settings.Env.Scope).
		Msg("Operations initialized")

	return groups.New(reg, env), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pathgroup version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newAddToPathCmd() *cobra.Command {
	var noSystemPath bool

	cmd := &cobra.Command{
		Use:   "add-to-path <group> <path>",
		Short: "Register a directory under a group and add it to PATH",
		Long: `Register a directory in the path group registry and append it to the
PATH variable. With --no-system-path only the registry is updated; the
directory can be brought onto PATH later with add-group-to-path.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Register a dev tool directory and put it on PATH
  pathgroup add-to-path dev ~/tools/bin

  # Register without touching PATH
  pathgroup add-to-path dev ~/tools/bin --no-system-path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := initOperations()
			if err != nil {
				return err
			}
			return ops.AddToPath(args[0], args[1], !noSystemPath)
		},
	}

	cmd.Flags().BoolVar(&noSystemPath, "no-system-path", false, "Update only the registry, not the PATH variable")

	return cmd
}

func newAddGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-group-to-path [group...]",
		Short: "Add every registered path of the named groups to PATH",
		Long: `Add every path registered under the named groups to the PATH variable.
Paths already present are left in place; new ones are appended.

If no groups are specified, every registered path is added.`,
		Args: cobra.ArbitraryArgs,
		Example: `  # Add all registered paths
  pathgroup add-group-to-path

  # Add specific groups
  pathgroup add-group-to-path dev python`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := initOperations()
			if err != nil {
				return err
			}
			return ops.AddGroupsToPath(args)
		},
	}
}

func newRemoveGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-group-from-path [group...]",
		Short: "Remove every registered path of the named groups from PATH",
		Long: `Remove every path registered under the named groups from the PATH
variable. Registered paths that are not currently on PATH are skipped.

If no groups are specified, every registered path is removed.`,
		Args: cobra.ArbitraryArgs,
		Example: `  # Remove all registered paths
  pathgroup remove-group-from-path

  # Remove specific groups
  pathgroup remove-group-from-path dev python`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := initOperations()
			if err != nil {
				return err
			}
			return ops.RemoveGroupsFromPath(args)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered groups and their PATH status",
		Long: `List every registered group with its paths, marking which paths are
currently present on the PATH variable.`,
		Example: `  # Show all groups
  pathgroup list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := initOperations()
			if err != nil {
				return err
			}

			statuses, err := ops.List()
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				fmt.Println("No paths registered.")
				return nil
			}
			renderList(statuses)
			return nil
		},
	}
}

func renderList(statuses []groups.GroupStatus) {
	styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	groupStyle := lipgloss.NewStyle().Bold(true)
	onStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	for _, gs := range statuses {
		name := gs.Name
		if styled {
			name = groupStyle.Render(name)
		}
		fmt.Printf("%s:\n", name)
		for _, e := range gs.Entries {
			marker := "-"
			if e.OnPath {
				marker = "✓"
			}
			if styled {
				if e.OnPath {
					marker = onStyle.Render(marker)
				} else {
					marker = offStyle.Render(marker)
				}
			}
			fmt.Printf("  %s %s\n", marker, e.Path)
		}
	}
}
