package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"rushlint/internal/adapters/fs"
	"rushlint/internal/adapters/report"
	"rushlint/internal/application"
	"rushlint/internal/config"
	"rushlint/internal/infrastructure/i18n"
)

var (
	flagRoot     string
	flagConfig   string
	flagMinimize bool
	flagMapping  bool
)

var rootCmd = &cobra.Command{
	Use:   "rushlint",
	Short: "Reconcile translation keys used in code against the language stores",
	Long: `rushlint scans the Rush Sync Server sources for translation key
references, compares them with the per-language JSON stores and reports
unused, missing, redundant and inconsistently mapped keys. It can also write
pruned store files and generate the static display-mapping code.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagRoot, "root", "", `project root to analyze (default ".")`)
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to rushlint.toml")
	rootCmd.Flags().BoolVar(&flagMinimize, "minimize", false, "write pruned store files")
	rootCmd.Flags().BoolVar(&flagMapping, "mapping", false, "generate the display-mapping source file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagRoot, flagConfig)
	if err != nil {
		return err
	}

	scanner, err := fs.NewSourceScanner(cfg.Root, fs.ScanSpec{
		Files:     cfg.Scan.Files,
		Globs:     cfg.Scan.Globs,
		Sweep:     cfg.Scan.Sweep,
		Extension: cfg.Scan.Extension,
	})
	if err != nil {
		return err
	}

	extractor, err := application.NewExtractor(cfg.Scan.Patterns)
	if err != nil {
		return err
	}
	svc := application.NewAnalyzerService(
		extractor,
		application.NewStoreParser(nil),
		application.NewChecker(cfg.Mappings),
		scanner,
		fs.NewStoreLoader(cfg.Root, cfg.Stores),
	)

	analysis, err := svc.Analyze()
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(i18n.NewTranslator(cfg.Locale), cfg.Locale, os.Stdout)
	renderer.Render(analysis)

	writer := fs.NewWriter(cfg.Output.Dir, cfg.Output.MappingFile)

	if flagMinimize {
		paths := make(map[string]string)
		for i := range analysis.Variants {
			v := &analysis.Variants[i]
			path, err := writer.WriteStore(v.Store.Variant, v.Minimized.Fields)
			if err != nil {
				log.Printf("minimize %s: %v", v.Store.Variant, err)
				continue
			}
			paths[v.Store.Variant] = path
		}
		renderer.RenderMinimization(analysis, paths)
	}

	if flagMapping {
		code, err := report.NewMappingCodegen(cfg.Output.Package, cfg.Mappings).Generate()
		if err != nil {
			return err
		}
		path, err := writer.WriteMapping(code)
		if err != nil {
			return err
		}
		renderer.RenderMappingSaved(path)
	}

	renderer.RenderHints(flagMinimize, flagMapping)
	return nil
}
