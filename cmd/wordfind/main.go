// Package main provides the CLI entrypoint for wordfind.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordfind/internal/config"
	"github.com/verte-zerg/wordfind/internal/corpus"
	"github.com/verte-zerg/wordfind/internal/filter"
	"github.com/verte-zerg/wordfind/internal/tui"
)

var (
	allWordsPath    string
	commonWordsPath string
	commonOnly      bool

	filterPattern string
	filterInclude string
	filterExclude string
	filterCommon  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordfind",
		Short:         "TUI helper for five-letter word puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUICmd,
	}

	rootCmd.PersistentFlags().StringVar(&allWordsPath, "all-words", config.DefaultAllWordsPath(), "path to the full word list")
	rootCmd.PersistentFlags().StringVar(&commonWordsPath, "common-words", config.DefaultCommonWordsPath(), "path to the common-words list")
	rootCmd.Flags().BoolVar(&commonOnly, "common-only", false, "start with only common words shown")

	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}

	c, err := loadCorpus()
	if err != nil {
		return err
	}

	model := tui.NewModel(c, commonOnly)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the word list once and print matches",
		Args:  cobra.NoArgs,
		RunE:  runFilterCmd,
	}
	cmd.Flags().StringVar(&filterPattern, "pattern", "", "position pattern, e.g. 'a..l.' ('.' or '_' = any letter)")
	cmd.Flags().StringVar(&filterInclude, "include", "", "letters the word must contain (repeat a letter for a minimum count)")
	cmd.Flags().StringVar(&filterExclude, "exclude", "", "letters the word must not contain")
	cmd.Flags().BoolVar(&filterCommon, "common", false, "search common words only")
	return cmd
}

func runFilterCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}

	c, err := loadCorpus()
	if err != nil {
		return err
	}

	state := filter.NewState(c.WordLength())
	if filterPattern != "" {
		state, err = filter.ParsePattern(state, filterPattern)
		if err != nil {
			return err
		}
	}
	state = state.SetInclude(filterInclude).SetExclude(filterExclude)
	if filterCommon {
		state = state.ToggleCommonOnly()
	}

	return printWords(cmd.OutOrStdout(), filter.Apply(c, state))
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the word list files",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}

	c, err := corpus.Load(allWordsPath, commonWordsPath)
	if err != nil {
		return fmt.Errorf("word list check failed: %w", err)
	}

	// Common words are a subset of the full list by data convention only;
	// report violations without failing.
	inAll := make(map[string]struct{}, len(c.All()))
	for _, word := range c.All() {
		inAll[word] = struct{}{}
	}
	for _, word := range c.Common() {
		if _, ok := inAll[word]; !ok {
			logErrf("warning: common word %q is not in the full list\n", word)
		}
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "ok: %d words, %d common\n", len(c.All()), len(c.Common())); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyFileConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "all-words", &allWordsPath, fileCfg.Lists.AllWords)
	applyStringConfig(cmd, "common-words", &commonWordsPath, fileCfg.Lists.CommonWords)
	if cmd.Flags().Lookup("common-only") != nil {
		applyBoolConfig(cmd, "common-only", &commonOnly, fileCfg.Filter.CommonOnly)
	}
	return nil
}

func loadCorpus() (*corpus.Corpus, error) {
	c, err := corpus.Load(allWordsPath, commonWordsPath)
	if err != nil {
		return nil, wordListLoadError(err)
	}
	return c, nil
}

func wordListLoadError(err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word lists: %v", err),
		fmt.Sprintf("expected full list at: %s", allWordsPath),
		fmt.Sprintf("expected common list at: %s", commonWordsPath),
		"Point at other files with --all-words / --common-words or the config file.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func printWords(w io.Writer, words []string) error {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = cols
		}
	}
	for _, line := range layoutColumns(words, width) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// layoutColumns arranges words into rows that fit the terminal width.
// A width of 0 or less (stdout is not a terminal) produces one word per
// line in the canonical lowercase, for piping.
func layoutColumns(words []string, width int) []string {
	if width <= 0 {
		return append([]string(nil), words...)
	}
	cellWidth := 0
	for _, word := range words {
		if w := runewidth.StringWidth(word); w > cellWidth {
			cellWidth = w
		}
	}
	if cellWidth == 0 {
		return nil
	}
	perRow := (width + 2) / (cellWidth + 2)
	if perRow < 1 {
		perRow = 1
	}
	lines := make([]string, 0, (len(words)+perRow-1)/perRow)
	for start := 0; start < len(words); start += perRow {
		end := start + perRow
		if end > len(words) {
			end = len(words)
		}
		cells := make([]string, 0, end-start)
		for _, word := range words[start:end] {
			cells = append(cells, runewidth.FillRight(strings.ToUpper(word), cellWidth))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	return lines
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordfind configuration
# Uncomment a value to enable it. CLI flags override config values.

[lists]
# all-words = %q
# common-words = %q

[filter]
# common-only = false   # Start with only common words shown
`,
		config.DefaultAllWordsPath(),
		config.DefaultCommonWordsPath(),
	)
}
