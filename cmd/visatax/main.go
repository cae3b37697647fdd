package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/visatax/visatax/internal/calculation"
	"github.com/visatax/visatax/internal/config"
	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/output"
	"github.com/visatax/visatax/internal/tables"
	"github.com/visatax/visatax/internal/verify"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "visatax",
	Short: "Take-home pay estimator for F-1 students and H-1B workers",
	Long:  "Estimates US federal, FICA and state tax liability and take-home pay for international students and workers",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Calculate take-home pay and tax liability for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if overlayFile, _ := cmd.Flags().GetString("tables"); overlayFile != "" {
			if err := tables.LoadOverlay(overlayFile); err != nil {
				return err
			}
		}

		parser := config.NewProfileParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		// Validation is advisory: findings are printed, the estimate is
		// produced either way.
		issues := calculation.ValidateProfile(*profile)
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", issue.Severity, issue.Field, issue.Message)
		}
		if calculation.HasErrors(issues) {
			fmt.Fprintln(os.Stderr, "input has errors; the estimate below may not be trustworthy")
		}

		engine := calculation.NewEngine()
		result := engine.Calculate(*profile)

		formatName, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(formatName)
		if f == nil {
			return fmt.Errorf("unsupported format %q (available: %v)", formatName, output.FormatterNames())
		}
		data, err := f.Format(&result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))

		if doVerify, _ := cmd.Flags().GetBool("verify"); doVerify {
			runVerification(*profile, result)
		}
		return nil
	},
}

// runVerification is best-effort: a missing API key, a network failure or a
// malformed reply prints a notice and changes nothing about the result.
func runVerification(profile domain.Profile, result domain.TaxResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	verifier, err := verify.NewVerifier(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verification skipped: %v\n", err)
		return
	}
	defer verifier.Close()

	check, err := verifier.CrossCheck(ctx, profile, result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verification unavailable: %v\n", err)
		return
	}
	if check.Agrees {
		fmt.Println("Cross-check: independent estimate agrees with these figures")
	} else {
		fmt.Printf("Cross-check: independent estimate disagrees: %s\n", check.Notes)
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewProfileParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		issues := calculation.ValidateProfile(*profile)
		if len(issues) == 0 {
			fmt.Printf("Profile %s is valid\n", args[0])
			return nil
		}
		for _, issue := range issues {
			fmt.Printf("%s: %s: %s\n", issue.Severity, issue.Field, issue.Message)
		}
		if calculation.HasErrors(issues) {
			return fmt.Errorf("profile has validation errors")
		}
		return nil
	},
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List supported tax years and their headline figures",
	Run: func(cmd *cobra.Command, args []string) {
		for _, year := range tables.SupportedYears() {
			t, _ := tables.ForYear(year)
			fmt.Printf("%d: SS wage base %s", year, output.FormatCurrency(t.SSWageBase))
			if year == tables.DefaultYear {
				fmt.Print(" (default)")
			}
			fmt.Println()
			for _, line := range output.ContributionLimitLines(t) {
				fmt.Printf("  %s\n", line)
			}
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "visatax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	calculateCmd.Flags().String("format", "console", "output format: console, json, csv")
	calculateCmd.Flags().String("tables", "", "YAML overlay file for reference tables")
	calculateCmd.Flags().Bool("verify", false, "cross-check the result with Gemini (requires GEMINI_API_KEY)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
