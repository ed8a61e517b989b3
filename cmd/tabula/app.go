package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tabula/internal/config"
	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/formatter"
	"github.com/alexisbeaulieu97/tabula/internal/logger"
	"github.com/alexisbeaulieu97/tabula/internal/render"
	"github.com/alexisbeaulieu97/tabula/internal/theme"
)

// tableContext bundles everything a command needs to render one table.
type tableContext struct {
	Config      *config.Config
	Data        *config.Dataset
	Descriptors []field.Descriptor
	Theme       theme.Theme
	Formatters  *formatter.Registry
	Renderer    *render.Renderer
	Logger      *logger.Logger
}

func loadTableContext(operation string, opts *sourceOptions, withData bool, log *logger.Logger) (*tableContext, error) {
	if err := validateFilePath("config", opts.configPath); err != nil {
		return nil, newCommandError(operation, "checking config path", err, "Pass an existing file with --config or omit it to use the built-in example.")
	}
	if withData {
		if err := validateFilePath("data", opts.dataPath); err != nil {
			return nil, newCommandError(operation, "checking data path", err, "Pass an existing file with --data or omit it to use the built-in example rows.")
		}
	}

	cfg := config.Example()
	if opts.configPath != "" {
		parsed, err := config.ParseConfig(opts.configPath)
		if err != nil {
			return nil, newCommandError(operation, fmt.Sprintf("loading configuration %q", opts.configPath), err, "Fix the configuration errors shown above and try again.")
		}
		cfg = parsed
	}
	if opts.preset != "" {
		if _, ok := theme.Preset(opts.preset); !ok {
			return nil, newCommandError(operation, "selecting theme preset", fmt.Errorf("unknown preset %q", opts.preset), fmt.Sprintf("Use one of: %v.", theme.PresetNames()))
		}
		cfg.Preset = opts.preset
	}

	log = log.WithFields(map[string]any{"table": cfg.Name})
	config.LintConfig(cfg, log)

	tc := &tableContext{
		Config:      cfg,
		Descriptors: cfg.Descriptors(),
		Theme:       cfg.ResolvedTheme(),
		Formatters:  formatter.NewDefaultRegistry(cfg.BuiltinOptions(), log),
		Logger:      log,
	}
	tc.Renderer = render.New(tc.Formatters, log)

	if withData {
		data := config.ExampleData()
		if opts.dataPath != "" {
			loaded, err := config.LoadData(opts.dataPath)
			if err != nil {
				return nil, newCommandError(operation, fmt.Sprintf("loading rows %q", opts.dataPath), err, "Provide a list of mappings or a mapping with a 'data' list.")
			}
			data = loaded
		}
		tc.Data = data
		log.WithFields(map[string]any{"rows": len(data.Rows), "total": data.Total}).Debug("rows loaded")
	}

	return tc, nil
}

// useTerminalIcons swaps the theme's markup icons for glyphs suited to w.
func (tc *tableContext) useTerminalIcons(w any) {
	tc.Theme.Table.RenderIcon = theme.NewGlyphRenderer(supportsUnicode(w))
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalWidth(writer any) int {
	if file, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			return width
		}
	}
	return 0
}
