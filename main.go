// mailtrans — machine translation of email-platform language files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/campaign-tools/mailtrans/config"
	"github.com/campaign-tools/mailtrans/i18n"
	"github.com/campaign-tools/mailtrans/langfile"
	"github.com/campaign-tools/mailtrans/localemap"
	"github.com/campaign-tools/mailtrans/pipeline"
	"github.com/campaign-tools/mailtrans/settings"
	"github.com/campaign-tools/mailtrans/translator"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mailtrans",
		Short: "Machine translation of email-platform language files",
		Long: `mailtrans — machine translation of email-platform language files.

Reads a base-language (en-US) key-value language file, translates every
key into the platform's target locales through an external translation
service, repairs the usual machine-translation artifacts, and appends
one block per locale to the destination file.

Commands:
  translate   Translate the source file into target locales
  status      Show source file and locale statistics
  locales     Print the locale table (source locale → service code)
  auth        Manage provider API keys

Providers:
  google   Google Cloud Translation v2 — API key
  deepl    DeepL v2 — API key
  llm      Any OpenAI-compatible chat endpoint`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newTranslateCmd(),
		newStatusCmd(),
		newLocalesCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	// A .env in the working directory may hold MAILTRANS_API_KEY.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mailtrans version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// locales (print the locale table)
// ---------------------------------------------------------------------------

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "Print the locale table",
		Long:  `Print the fixed source-locale → service-code table. Does not modify any files.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "\n%sLocales%s\n", colorBlue, colorReset)
			fmt.Fprintln(os.Stderr, strings.Repeat("─", 40))
			fmt.Fprintf(os.Stderr, "%-10s %-10s %s\n", "Source", "Service", "")
			for _, e := range localemap.All() {
				note := ""
				if e.SourceLocale == localemap.BaseLocale {
					note = "(base, never a target)"
				}
				fmt.Fprintf(os.Stderr, "%-10s %-10s %s\n", e.SourceLocale, e.ServiceCode, note)
			}
			fmt.Fprintln(os.Stderr)
		},
	}
}

// ---------------------------------------------------------------------------
// status (read-only: source file + locale stats)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show source file and locale statistics",
		Long: `Show the configured source file's key statistics and the target
locale list. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srcPath := filepath.Join(rootDir, cfg.Source)
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	codec := codecFor(cfg.Format)
	cat, err := codec.ParseCatalog(data)
	if err != nil {
		return err
	}

	total, empty := 0, 0
	for _, raw := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		ln := codec.Classify(raw)
		if ln.Kind != langfile.KeyValue {
			continue
		}
		total++
		if strings.TrimSpace(ln.Value) == "" {
			empty++
		}
	}

	fmt.Fprintf(os.Stderr, "\n%sSource%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 40))
	fmt.Fprintf(os.Stderr, "  File:     %s\n", srcPath)
	fmt.Fprintf(os.Stderr, "  Format:   %s\n", cfg.Format)
	fmt.Fprintf(os.Stderr, "  Keys:     %d (%d distinct, %d empty)\n", total, cat.Len(), empty)
	fmt.Fprintf(os.Stderr, "  Output:   %s\n", filepath.Join(rootDir, cfg.Output))

	locales := cfg.TargetLocales()
	fmt.Fprintf(os.Stderr, "  Targets:  %s\n\n", strings.Join(locales, ", "))
	return nil
}

// ---------------------------------------------------------------------------
// translate (run the pipeline)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	var (
		source   string
		output   string
		format   string
		provider string
		apiKey   string
		model    string
		baseURL  string
		proxy    string
		langs    string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate the source file into target locales",
		Long: `Translate the base-language file into each target locale and append
one block per locale to the output file.

Locales are processed strictly in order, one at a time; a translation
failure aborts the run but keeps blocks already appended. The output
file is append-only — repeated runs accumulate blocks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Flags override the config file.
			if source != "" {
				cfg.Source = source
			}
			if output != "" {
				cfg.Output = output
			}
			if format != "" {
				cfg.Format = format
			}
			if provider != "" {
				cfg.Provider = provider
			}
			if model != "" {
				cfg.Model = model
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}

			locales := cfg.TargetLocales()
			if langs != "" {
				locales = nil
				for _, l := range strings.Split(langs, ",") {
					locales = append(locales, localemap.Canonical(strings.TrimSpace(l)))
				}
			}
			for _, loc := range locales {
				if _, err := localemap.ServiceCodeFor(loc); err != nil {
					return err
				}
			}

			prov, ok := translator.DefaultProviders()[cfg.Provider]
			if !ok {
				return fmt.Errorf("unknown translation provider %q", cfg.Provider)
			}
			prov.APIKey = settings.APIKey(apiKey, cfg.Provider)
			prov.Model = cfg.Model
			prov.Proxy = proxy
			if cfg.BaseURL != "" {
				prov.BaseURL = cfg.BaseURL
			}
			if timeout > 0 {
				prov.Timeout = timeout
			}
			if prov.APIKey == "" {
				logWarning("No API key configured for %s (see 'mailtrans auth')", prov.Name)
			}

			svc, err := translator.New(prov)
			if err != nil {
				return err
			}

			return runTranslate(cfg, svc, locales)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source language file (default from config)")
	cmd.Flags().StringVar(&output, "out", "", "Destination file (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "Language file format: text or yaml")
	cmd.Flags().StringVar(&provider, "provider", "", "Translation provider: google, deepl, llm")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Provider API key (overrides env and auth store)")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier (llm provider)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Provider API base URL override")
	cmd.Flags().StringVar(&proxy, "proxy", "", "HTTP/HTTPS proxy URL")
	cmd.Flags().StringVar(&langs, "langs", "", "Comma-separated target locales (default: all non-base)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout")

	return cmd
}

func runTranslate(cfg *config.File, svc translator.Service, locales []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srcPath := filepath.Join(rootDir, cfg.Source)
	outPath := filepath.Join(rootDir, cfg.Output)

	p := &pipeline.Pipeline{Codec: codecFor(cfg.Format), Service: svc}
	w := &pipeline.Writer{Path: outPath}

	done := 0
	for _, locale := range locales {
		src, err := os.ReadFile(srcPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", srcPath, err)
		}

		cat, err := p.Codec.ParseCatalog(src)
		if err != nil {
			return err
		}
		logInfo(i18n.N("Translating %d key into %s", "Translating %d keys into %s", cat.Len()),
			cat.Len(), locale)

		block, err := p.RunLocale(ctx, src, locale)
		if err != nil {
			return err
		}
		if block == "" {
			logWarning(i18n.T("Nothing to translate for %s"), locale)
			continue
		}
		if err := w.AppendBlock(block); err != nil {
			return err
		}
		logSuccess(i18n.T("Appended block for %s to %s"), locale, outPath)
		done++
	}

	logSuccess(i18n.N("Done: %d locale processed", "Done: %d locales processed", done), done)
	return nil
}

// ---------------------------------------------------------------------------
// auth (manage provider API keys)
// ---------------------------------------------------------------------------

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage provider API keys",
		Long: `Store, list, or remove translation provider API keys.

Keys are kept in ` + settings.FilePath() + ` with 0600 permissions.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <provider> <api-key>",
			Short: "Store an API key for a provider",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, ok := translator.DefaultProviders()[args[0]]; !ok {
					return fmt.Errorf("unknown translation provider %q", args[0])
				}
				if err := settings.Set(args[0], &settings.Info{Key: args[1]}); err != nil {
					return err
				}
				logSuccess("Stored API key for %s", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <provider>",
			Short: "Remove a provider's API key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := settings.Remove(args[0]); err != nil {
					return err
				}
				logSuccess("Removed API key for %s", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List providers with stored keys",
			Run: func(cmd *cobra.Command, args []string) {
				store := settings.Load()
				if len(store) == 0 {
					logInfo("No stored credentials (%s)", settings.FilePath())
					return
				}
				for id := range store {
					fmt.Fprintf(os.Stderr, "  %s\n", id)
				}
			},
		},
	)

	return cmd
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// loadConfig reads .mailtrans.yaml from the project root, falling back
// to the built-in defaults when absent.
func loadConfig() (*config.File, error) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}

// codecFor maps a config format name to its codec variant.
func codecFor(format string) langfile.Codec {
	if format == config.FormatYAML {
		return langfile.YAMLCodec{}
	}
	return langfile.TextCodec{}
}
