package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/goliatone/go-boxton/internal/config"
	"github.com/goliatone/go-boxton/internal/prompt"
	"github.com/goliatone/go-boxton/pkg/layout"
	"github.com/goliatone/go-boxton/pkg/orchestrator"
	"github.com/goliatone/go-boxton/pkg/pagefile"
	"github.com/goliatone/go-boxton/pkg/render"
	"github.com/goliatone/go-boxton/pkg/renderers/boxton"
	"github.com/goliatone/go-boxton/pkg/sanitize"
	"github.com/goliatone/go-boxton/pkg/themes"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, prompt.NewSurveyDriver()); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("boxton: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	flags := flag.NewFlagSet("boxton-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pagePath := flags.String("page", "", "page descriptor (YAML or JSON)")
	output := flags.String("output", "", "output file (stdout if empty)")
	rendererName := flags.String("renderer", "", "renderer to use")
	locale := flags.String("locale", "", "locale for translated strings")
	themeName := flags.String("theme", "", "theme name")
	variant := flags.String("variant", "", "theme variant")
	interactive := flags.Bool("interactive", false, "prompt for missing title and content")
	configPath := flags.String("config", "", "config file (overrides BOXTON_CONFIG)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	overrideString(&cfg.Renderer, *rendererName)
	overrideString(&cfg.Locale, *locale)
	overrideString(&cfg.Theme.Name, *themeName)
	overrideString(&cfg.Theme.Variant, *variant)

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "boxton",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: stderr,
	})

	page := layout.NewPage()
	if *pagePath != "" {
		page, err = pagefile.LoadFile(*pagePath)
		if err != nil {
			return err
		}
	} else if !*interactive {
		return errors.New("either -page or -interactive is required")
	}

	if *interactive {
		if err := prompt.Complete(ctx, driver, &page); err != nil {
			return err
		}
	}

	gen, err := newOrchestrator(cfg, logger)
	if err != nil {
		return err
	}

	renderOptions := render.RenderOptions{Locale: cfg.Locale}
	if cfg.Translations != "" {
		catalog, err := render.LoadCatalogFS(os.DirFS(cfg.Translations))
		if err != nil {
			return err
		}
		renderOptions.Translator = catalog
	}

	outputHTML, err := gen.Generate(ctx, orchestrator.Request{
		Page:          page,
		Renderer:      cfg.Renderer,
		ThemeName:     cfg.Theme.Name,
		ThemeVariant:  cfg.Theme.Variant,
		RenderOptions: renderOptions,
	})
	if err != nil {
		return fmt.Errorf("generate page: %w", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("page written", "path", *output)
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(outputHTML))
	return err
}

func newOrchestrator(cfg config.Config, logger hclog.Logger) (*orchestrator.Orchestrator, error) {
	var rendererOptions []boxton.Option
	if cfg.TemplatesDir != "" {
		rendererOptions = append(rendererOptions, boxton.WithTemplatesDir(cfg.TemplatesDir))
	}
	if cfg.Sanitize {
		rendererOptions = append(rendererOptions, boxton.WithSanitizer(sanitize.FragmentPolicy()))
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithRendererOptions(rendererOptions...),
	}
	if cfg.Theme.Manifest != "" {
		manifest, err := themes.LoadManifest(cfg.Theme.Manifest)
		if err != nil {
			return nil, err
		}
		options = append(options,
			orchestrator.WithThemeSelector(themes.NewStaticSelector(manifest)),
			orchestrator.WithDefaultTheme(cfg.Theme.Name, cfg.Theme.Variant),
		)
	}
	return orchestrator.New(options...), nil
}

func overrideString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
