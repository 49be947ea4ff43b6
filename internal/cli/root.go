package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/styletab/styletab"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It
// is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type renderOpts struct {
	format    string   // output format name
	output    string   // output file path ("" = stdout)
	calls     bool     // dump the unevaluated call list instead of rendering
	include   []string // directive names to keep (empty = all)
	exclude   []string // directive names to drop
	stripBold bool     // strip bold markers from labels
	missing   bool     // enable missing-value formatting
	escape    bool     // overlay mode toggle
	theme     string   // theme TOML path
	caption   string   // caption override
}

// Execute runs the styletab CLI and returns an error if the command
// fails.
func Execute() error {
	var verbose bool
	opts := renderOpts{escape: true}

	root := &cobra.Command{
		Use:          "styletab <definition>",
		Short:        "styletab renders styled summary tables",
		Long:         `styletab loads a table definition (body, headers, spanning headers, bold/italic annotations, rules, footnotes) from a YAML or TOML file and renders it as a text, HTML, Markdown, CSV, TSV, JSON, or YAML table.`,
		Args:         cobra.ExactArgs(1),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("styletab %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.format, "format", "f", "text", "output format")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	root.Flags().BoolVar(&opts.calls, "calls", false, "dump the unevaluated call list instead of rendering")
	root.Flags().StringSliceVar(&opts.include, "include", nil, "directive names to keep")
	root.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "directive names to drop")
	root.Flags().BoolVar(&opts.stripBold, "strip-bold", false, "strip bold markers from labels")
	root.Flags().BoolVar(&opts.missing, "na", false, "format missing values with the theme symbol")
	root.Flags().BoolVar(&opts.escape, "escape", true, "mask-based styling; false rewrites raw cells with markers")
	root.Flags().StringVar(&opts.theme, "theme", "", "theme TOML file")
	root.Flags().StringVar(&opts.caption, "caption", "", "caption override")

	return root.ExecuteContext(context.Background())
}

func run(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	format, err := styletab.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	tbl, err := loadDefinition(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded definition", "path", path, "rows", tbl.Body.NumRows(), "columns", len(tbl.Columns))

	convOpts := buildOptions(opts)
	if opts.theme != "" {
		theme, err := loadTheme(opts.theme)
		if err != nil {
			return err
		}
		convOpts = append(convOpts, styletab.WithTheme(theme))
	}

	var out io.Writer = os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if opts.calls {
		calls, err := styletab.Convert(tbl, convOpts...)
		if err != nil {
			return err
		}
		dumpFormat := format
		if dumpFormat != styletab.YAML {
			dumpFormat = styletab.JSON
		}
		if err := calls.Dump(out, dumpFormat); err != nil {
			return err
		}
		logger.Debug("dumped call list", "directives", len(calls.Directives()))
		return nil
	}

	if err := styletab.Write(out, format, tbl, convOpts...); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("rendered table (%s)", time.Since(start).Round(time.Millisecond)), "format", format)
	return nil
}

func buildOptions(opts renderOpts) []styletab.Option {
	var convOpts []styletab.Option
	if len(opts.include) > 0 {
		convOpts = append(convOpts, styletab.WithInclude(styletab.Only(opts.include...)))
	} else if len(opts.exclude) > 0 {
		convOpts = append(convOpts, styletab.WithInclude(styletab.Except(opts.exclude...)))
	}
	if opts.stripBold {
		convOpts = append(convOpts, styletab.WithStripMarkers())
	}
	if opts.missing {
		convOpts = append(convOpts, styletab.WithMissing())
	}
	if !opts.escape {
		convOpts = append(convOpts, styletab.WithEscape(false))
	}
	if opts.caption != "" {
		convOpts = append(convOpts, styletab.WithCaption(opts.caption))
	}
	return convOpts
}
