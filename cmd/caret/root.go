package main

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/iw2rmb/caret"
	"github.com/iw2rmb/caret/editor"
	"github.com/iw2rmb/caret/internal/config"
	"github.com/iw2rmb/caret/internal/log"
)

const localConfigPath = ".caret/config.yaml"

var ErrNotUTF8 = errors.New("file is not valid UTF-8")

type options struct {
	cfgFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "caret [file]",
		Short: "Move a cursor over text by graphemes and lines",
		Long: `caret opens a UTF-8 file read-only and moves a cursor over it one grapheme
cluster or one line at a time. Without a file it opens the file named after
the current directory.`,
		Version:      caret.Version(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			userDir, homeErr := userConfigDir()
			cfg, found, err := loadConfig(v, opts.cfgFile, userDir)
			if err != nil {
				return err
			}
			cleanup, err := initLogging(opts.debug, cfg.DebugLog)
			if err != nil {
				return err
			}
			defer cleanup()

			log.Debug(log.CatConfig, "loaded", "file", v.ConfigFileUsed(), "lens", cfg.Lens)
			switch {
			case homeErr != nil:
				log.ErrorErr(log.CatConfig, "no home directory, user config skipped", homeErr)
			case !found:
				seedConfig(cmd.ErrOrStderr(), userDir)
			}
			return run(cmd.OutOrStdout(), cfg, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: .caret/config.yaml, then ~/.config/caret/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false,
		"write a debug log (also enabled by CARET_DEBUG)")
	cmd.Flags().String("lens", "", "segmentation lens: graphemes, words or sentences")
	cmd.Flags().Bool("line-numbers", true, "show the line number gutter")

	_ = v.BindPFlag("lens", cmd.Flags().Lookup("lens"))
	_ = v.BindPFlag("line_numbers", cmd.Flags().Lookup("line-numbers"))

	return cmd
}

// userConfigDir returns ~/.config/caret. It returns "" and the error when
// there is no home directory.
func userConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "caret"), nil
}

// loadConfig resolves configuration from flags, the config file and
// defaults. Lookup order: --config, .caret/config.yaml, then userDir.
// An empty userDir skips the user lookup. found is false when no config
// file was read.
func loadConfig(v *viper.Viper, cfgFile, userDir string) (cfg config.Config, found bool, err error) {
	defaults := config.Defaults()
	v.SetDefault("lens", defaults.Lens)
	v.SetDefault("line_numbers", defaults.LineNumbers)
	v.SetDefault("tab_width", defaults.TabWidth)
	v.SetDefault("theme.cursor", defaults.Theme.Cursor)
	v.SetDefault("theme.line_number", defaults.Theme.LineNumber)
	v.SetDefault("debug_log", defaults.DebugLog)

	search := true
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	case userDir != "":
		v.AddConfigPath(userDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	default:
		search = false
	}

	if search {
		found = true
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return config.Config{}, false, fmt.Errorf("reading config: %w", err)
			}
			found = false
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, false, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, false, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, found, nil
}

// seedConfig writes the default config into userDir. A failure is not
// fatal; it is logged and reported on errOut.
func seedConfig(errOut io.Writer, userDir string) {
	path := filepath.Join(userDir, "config.yaml")
	if err := config.WriteDefaultConfig(path); err != nil {
		fmt.Fprintf(errOut, "caret: could not write default config: %v\n", err)
	}
}

func initLogging(debug bool, path string) (func(), error) {
	if !debug && os.Getenv("CARET_DEBUG") == "" {
		return func() {}, nil
	}
	if path == "" {
		path = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(path, "caret")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	return cleanup, nil
}

func run(out io.Writer, cfg config.Config, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}
	buf, err := loadBuffer(path)
	if err != nil {
		return err
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if !tty || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m := editor.New(editorConfig(cfg, path, buf))
	if !tty {
		// Nothing to navigate interactively; dump the buffer as rendered.
		_, err := fmt.Fprintln(out, m.Blur().View())
		return err
	}

	log.Info(log.CatUI, "start", "path", path, "bytes", len(buf))
	p := tea.NewProgram(app{viewer: m}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// resolvePath returns the file argument, or the file named after the
// current directory when none is given.
func resolvePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return filepath.Join(wd, filepath.Base(wd)), nil
}

func loadBuffer(path string) ([]byte, error) {
	buf, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's file argument
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	return buf, nil
}

func editorConfig(cfg config.Config, path string, buf []byte) editor.Config {
	st := editor.DefaultStyle()
	if cfg.Theme.Cursor != "" {
		st.Cursor = st.Cursor.Reverse(false).Background(lipgloss.Color(cfg.Theme.Cursor))
	}
	if cfg.Theme.LineNumber != "" {
		st.LineNum = st.LineNum.Foreground(lipgloss.Color(cfg.Theme.LineNumber))
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(path))

	return editor.Config{
		Buffer:       buf,
		ShowLineNums: cfg.LineNumbers,
		TabWidth:     cfg.TabWidth,
		Lens:         cfg.ParsedLens(),
		Style:        st,
		ColorSeed:    h.Sum64(),
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// app adapts editor.Model to tea.Model.
type app struct {
	viewer editor.Model
}

func (a app) Init() tea.Cmd { return a.viewer.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.viewer, cmd = a.viewer.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.viewer.View() }
