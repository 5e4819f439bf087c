package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/store"
)

// HistoryOptions holds flags for the history commands.
type HistoryOptions struct {
	*RootOptions
	Kind  string
	Limit int
}

// NewHistoryCommand creates the history command and its subcommands.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved calculations",
		Long: `Browse calculations saved with --save by the compare, load and target
commands.

Example:
  shieldlab history list --kind comparison --limit 5
  shieldlab history show 01936d1c-7c4e-7d2a-9b1e-5f0a3c2b1d4e`,
	}

	list := &cobra.Command{
		Use:           "list",
		Short:         "List saved records, oldest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(opts, cmd)
		},
	}
	list.Flags().StringVar(&opts.Kind, "kind", "", "only records of this kind (comparison|load|target)")
	list.Flags().IntVar(&opts.Limit, "limit", 20, "show only the newest N records (0 for all)")

	show := &cobra.Command{
		Use:           "show <id>",
		Short:         "Show one saved record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(opts, args[0], cmd)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func runHistoryList(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	kind := store.Kind(opts.Kind)
	switch kind {
	case "", store.KindComparison, store.KindLoad, store.KindTarget:
	default:
		return formatter.Fail(fmt.Errorf("%w: unknown record kind %q", errInvalidFlag, opts.Kind))
	}

	st, err := openHistory(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeHistory(st)

	records, err := st.List(cmd.Context(), kind, opts.Limit)
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(historyView{Records: records})
}

func runHistoryShow(opts *HistoryOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openHistory(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeHistory(st)

	rec, err := st.Get(cmd.Context(), id)
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(recordView{Record: rec})
}

func openHistory(opts *RootOptions) (*store.Store, error) {
	env, err := loadEnvironment(opts)
	if err != nil {
		return nil, err
	}
	return env.openStore()
}

func closeHistory(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
