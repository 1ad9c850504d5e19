package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/catalog"
	"github.com/anushreedahiya/pension-benefit/internal/config"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/output"
	"github.com/anushreedahiya/pension-benefit/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pensionfit",
		Short:         "Pension scheme eligibility and benefit estimator",
		Long:          "Match a personal profile against the pension scheme catalog for India, Japan, USA and UK, rank the eligible schemes and estimate their benefits",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("catalog", "", "Path to a scheme catalog file (default: bundled catalog)")
	root.PersistentFlags().Bool("debug", false, "Log pipeline details to stderr")

	root.AddCommand(
		evaluateCmd(),
		lookupCmd(),
		validateCmd(),
		schemesCmd(),
		scenarioCmd(),
		serveCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pensionfit %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [profile-file]",
		Short: "Assess a full applicant profile",
		Long:  "Load a profile from a YAML or JSON file, find the eligible schemes, estimate their benefits and compare them with the current scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.NewInputParser().LoadProfile(args[0])
			if err != nil {
				return err
			}
			return runReport(cmd, profile)
		},
	}
	addReportFlags(cmd)
	return cmd
}

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Quick scheme lookup by age, country and annual salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			age, _ := cmd.Flags().GetString("age")
			origin, _ := cmd.Flags().GetString("origin")
			salary, _ := cmd.Flags().GetString("salary")
			profile, err := config.NewInputParser().ParseQuery(age, origin, salary)
			if err != nil {
				return err
			}
			return runReport(cmd, profile)
		},
	}
	cmd.Flags().String("age", "", "Age in years (required)")
	cmd.Flags().String("origin", "", "Country: India, Japan, USA or UK (required)")
	cmd.Flags().String("salary", "", "Annual salary in local currency (required)")
	addReportFlags(cmd)
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.NewInputParser().LoadProfile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile file %s is valid (%s, age %d, %s)\n", args[0], profile.Name, profile.Age, profile.Country)
			return nil
		},
	}
}

func schemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the scheme catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			schemes := cat.Schemes()
			if raw, _ := cmd.Flags().GetString("country"); raw != "" {
				country, err := domain.ParseCountry(raw)
				if err != nil {
					return err
				}
				schemes = cat.ByCountry(country)
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				data, err := output.MarshalJSON(schemes)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.SchemeTable(schemes))
			return nil
		},
	}
	cmd.Flags().String("country", "", "Only list schemes of this country")
	cmd.Flags().Bool("json", false, "Print the records as JSON")
	return cmd
}

func scenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Project a monthly savings plan to retirement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := scenarioRequestFromFlags(cmd)
			if err != nil {
				return err
			}
			projection, err := calculation.ProjectScenario(req.Inputs(calculation.DefaultScenarioInputs()))
			if err != nil {
				return err
			}

			raw, _ := cmd.Flags().GetString("country")
			country, err := domain.ParseCountry(raw)
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := output.MarshalJSON(projection)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.ScenarioText(projection, country.CurrencySymbol()))
			return nil
		},
	}
	cmd.Flags().Int("current-age", 30, "Current age")
	cmd.Flags().Int("retirement-age", 60, "Retirement age")
	cmd.Flags().String("contribution", "10000", "Monthly contribution")
	cmd.Flags().String("return", "10", "Expected annual return in percent")
	cmd.Flags().String("inflation", "6", "Expected annual inflation in percent")
	cmd.Flags().String("country", string(domain.CountryIndia), "Country whose currency labels the output")
	cmd.Flags().Bool("json", false, "Print the projection as JSON")
	return cmd
}

// scenarioRequestFromFlags keeps only the flags the user set so unset
// inputs fall back to the projection defaults
func scenarioRequestFromFlags(cmd *cobra.Command) (config.ScenarioRequest, error) {
	var req config.ScenarioRequest
	flags := cmd.Flags()
	if flags.Changed("current-age") {
		v, _ := flags.GetInt("current-age")
		req.CurrentAge = &v
	}
	if flags.Changed("retirement-age") {
		v, _ := flags.GetInt("retirement-age")
		req.RetirementAge = &v
	}
	for name, target := range map[string]**decimal.Decimal{
		"contribution": &req.MonthlyContribution,
		"return":       &req.ReturnRate,
		"inflation":    &req.InflationRate,
	} {
		if !flags.Changed(name) {
			continue
		}
		raw, _ := flags.GetString(name)
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return config.ScenarioRequest{}, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
		}
		*target = &d
	}
	return req, nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pension HTTP API",
		Long:  "Serve GET /api/pension-schemes, POST /api/pension-comparison, POST /api/scenario and GET /api/catalog. Settings come from PENSION_* environment variables; flags override them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			if path, _ := cmd.Flags().GetString("catalog"); path != "" {
				cfg.CatalogPath = path
			}

			debugMode, _ := cmd.Flags().GetBool("debug")
			logger, err := newZapLogger(cfg.LogMode, debugMode)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync()

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			engine, err := calculation.NewCalculationEngine(cat)
			if err != nil {
				return err
			}
			engine.SetLogger(logger)

			srv := server.New(engine, cat, config.NewInputParser(), logger)
			return srv.ListenAndServe(cfg)
		},
	}
	cmd.Flags().String("port", "", "Listen port (default: $PENSION_PORT or 8080)")
	return cmd
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatAliases(), ", ")+")")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return catalog.Load(path)
}

// newEngine builds the pipeline over the selected catalog, logging through
// zap when --debug is set
func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, func(), error) {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return nil, nil, err
	}
	engine, err := calculation.NewCalculationEngine(cat)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		logger, err := newZapLogger("development", true)
		if err != nil {
			return nil, nil, err
		}
		engine.SetLogger(logger)
		cleanup = logger.Sync
	}
	return engine, cleanup, nil
}

func runReport(cmd *cobra.Command, profile domain.UserProfile) error {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.AvailableFormatAliases(), ", "))
	}

	engine, cleanup, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := engine.Evaluate(context.Background(), profile)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(f, report, extensionFor(f.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func extensionFor(formatter string) string {
	if formatter == "console" {
		return "txt"
	}
	return formatter
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
