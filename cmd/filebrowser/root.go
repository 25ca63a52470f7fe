package main

import (
	"os"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/browser"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/config"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/icons"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/log"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/open"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string

		dir         string
		showHidden  bool
		depth       int
		exclude     []string
		onlyDirs    bool
		onlyFiles   bool
		sortByDepth bool
		noSortType  bool
		useStdin    bool

		openCmd string
		dmenu   bool

		disableIcons    bool
		disableStatus   bool
		disableModeKeys bool
		hiddenSymbol    string
		noHiddenSymbol  string
		pathSep         string
		upText          string
		themes          []string

		debug bool
	)

	cmd := &cobra.Command{
		Use:     "filebrowser",
		Short:   "An interactive file browser",
		Long:    `Browse directories interactively and open the selected file, with optional recursive listings, glob excludes and a one-shot custom open command.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if cmd.Flags().Changed("config") {
				cfg, err = config.LoadConfigFile(configFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("dir") {
				cfg.Browser.Dir = dir
			}
			if flags.Changed("show-hidden") {
				cfg.Browser.ShowHidden = showHidden
			}
			if flags.Changed("depth") {
				cfg.Browser.Depth = depth
			}
			if flags.Changed("exclude") {
				cfg.Browser.Exclude = append(cfg.Browser.Exclude, exclude...)
			}
			if flags.Changed("only-dirs") {
				cfg.Browser.OnlyDirs = onlyDirs
			}
			if flags.Changed("only-files") {
				cfg.Browser.OnlyFiles = onlyFiles
			}
			if flags.Changed("sort-by-depth") {
				cfg.Browser.SortByDepth = sortByDepth
			}
			if flags.Changed("no-sort-by-type") {
				cfg.Browser.NoSortByType = noSortType
			}
			if flags.Changed("stdin") {
				cfg.Browser.Stdin = useStdin
			}
			if flags.Changed("cmd") {
				cfg.Open.Cmd = openCmd
			}
			if flags.Changed("dmenu") {
				cfg.Open.Dmenu = dmenu
			}
			if flags.Changed("disable-icons") {
				cfg.Display.DisableIcons = disableIcons
			}
			if flags.Changed("disable-status") {
				cfg.Display.DisableStatus = disableStatus
			}
			if flags.Changed("disable-mode-keys") {
				cfg.Display.DisableModeKeys = disableModeKeys
			}
			if flags.Changed("hidden-symbol") {
				cfg.Display.HiddenSymbol = hiddenSymbol
			}
			if flags.Changed("no-hidden-symbol") {
				cfg.Display.NoHiddenSymbol = noHiddenSymbol
			}
			if flags.Changed("path-sep") {
				cfg.Display.PathSep = pathSep
			}
			if flags.Changed("up-text") {
				cfg.Display.UpText = upText
			}
			if flags.Changed("theme") {
				cfg.Display.IconThemes = themes
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			log.SetDebug(cfg.Debug)

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.config/filebrowser/config.yaml)")

	cmd.Flags().StringVar(&dir, "dir", "", "directory to start in (default working directory)")
	cmd.Flags().BoolVar(&showHidden, "show-hidden", false, "show hidden files from the start")
	cmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "list files recursively until this depth, 0 for no limit")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "glob pattern to exclude from listings (repeatable)")
	cmd.Flags().BoolVar(&onlyDirs, "only-dirs", false, "list only directories")
	cmd.Flags().BoolVar(&onlyFiles, "only-files", false, "list only regular files")
	cmd.Flags().BoolVar(&sortByDepth, "sort-by-depth", false, "sort entries by depth before type")
	cmd.Flags().BoolVar(&noSortType, "no-sort-by-type", false, "do not list directories before files")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "read the initial listing from stdin, one path per line")

	cmd.Flags().StringVar(&openCmd, "cmd", config.DefaultCmd, "command used to open files, %s is replaced with the path")
	cmd.Flags().BoolVar(&dmenu, "dmenu", false, "print the selected path to stdout instead of opening it")

	cmd.Flags().BoolVar(&disableIcons, "disable-icons", false, "do not show entry icons")
	cmd.Flags().BoolVar(&disableStatus, "disable-status", false, "do not show the status line")
	cmd.Flags().BoolVar(&disableModeKeys, "disable-mode-keys", false, "disable the shift+left/right hidden-file keys")
	cmd.Flags().StringVar(&hiddenSymbol, "hidden-symbol", config.DefaultHiddenSymbol, "status marker while hidden files are shown")
	cmd.Flags().StringVar(&noHiddenSymbol, "no-hidden-symbol", config.DefaultNoHiddenSymbol, "status marker while hidden files are not shown")
	cmd.Flags().StringVar(&pathSep, "path-sep", config.DefaultPathSep, "breadcrumb separator in the status line")
	cmd.Flags().StringVar(&upText, "up-text", config.DefaultUpText, "display name of the parent entry")
	cmd.Flags().StringArrayVar(&themes, "theme", nil, "icon theme to search for themed icon files (repeatable)")

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

// run wires the configured collaborators together and hands control to the
// interactive loop.
func run(cfg *config.Config) error {
	scanner, err := browser.NewScanner(browser.ScanOptions{
		Depth:     cfg.Browser.Depth,
		OnlyDirs:  cfg.Browser.OnlyDirs,
		OnlyFiles: cfg.Browser.OnlyFiles,
		Exclude:   cfg.Browser.Exclude,
		Ordering: browser.Ordering{
			ByType:  !cfg.Browser.NoSortByType,
			ByDepth: cfg.Browser.SortByDepth,
		},
	})
	if err != nil {
		return err
	}

	invoker := open.New(cfg.Open.Cmd, cfg.Open.Dmenu)

	session, err := browser.NewSession(scanner, invoker, browser.SessionOptions{
		StartDir:       cfg.Browser.Dir,
		ShowHidden:     cfg.Browser.ShowHidden,
		UpText:         cfg.Display.UpText,
		HiddenSymbol:   cfg.Display.HiddenSymbol,
		NoHiddenSymbol: cfg.Display.NoHiddenSymbol,
		PathSep:        cfg.Display.PathSep,
		ShowStatus:     !cfg.Display.DisableStatus,
	})
	if err != nil {
		return err
	}

	if cfg.Browser.Stdin {
		session.SetListing(browser.ScanStdin(os.Stdin, session.Dir()))
	}

	model := tui.New(session, newIconCache(cfg), tui.Options{
		DisableIcons: cfg.Display.DisableIcons,
		ModeKeys:     !cfg.Display.DisableModeKeys,
	})

	opts := []tea.ProgramOption{}
	if cfg.Browser.Stdin {
		// Stdin carried the listing, so the terminal has to be reopened
		// for interactive input.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return err
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}
	if cfg.Open.Dmenu {
		// Keep stdout clean for the selected path.
		opts = append(opts, tea.WithOutput(os.Stderr))
	}

	_, err = tea.NewProgram(model, opts...).Run()
	return err
}

// newIconCache picks the icon lookup for the session: themed icon files
// when themes are configured, terminal glyphs otherwise.
func newIconCache(cfg *config.Config) *icons.Cache {
	if cfg.Display.DisableIcons {
		return nil
	}
	if len(cfg.Display.IconThemes) > 0 {
		return icons.NewCache(&icons.ThemeLookup{Themes: cfg.Display.IconThemes})
	}
	return icons.NewCache(icons.GlyphLookup{})
}
