// Command dsnpass generates, scores and exports passwords from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dsntech/dsnpass-go/internal/export"
	"github.com/dsntech/dsnpass-go/internal/password"
)

func main() {
	// .env is optional for the CLI.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dsnpass",
		Short: "Generate, score and export passwords",
		Long: `dsnpass generates random, memorable or dashed passwords, scores
their strength and saves them as text files.

Example:
  dsnpass generate --length 24 --symbols=false
  dsnpass generate --mode memorable --show-strength
  dsnpass strength 'Correct-Horse-9!'
  dsnpass export 'S3cret!pw' --name bank --dir ~/Documents`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenerateCmd(), newStrengthCmd(), newExportCmd())
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	def := password.DefaultConfig()
	var (
		cfg          = def
		mode         string
		count        int
		showStrength bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := password.ParseMode(mode)
			if err != nil {
				return err
			}
			cfg.Mode = m
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			out := cmd.OutOrStdout()
			for range count {
				pw, err := password.Generate(cfg)
				if err != nil {
					return err
				}
				if showStrength {
					s := password.ScoreStrength(pw)
					fmt.Fprintf(out, "%s\t%d/%d %s\n", pw, s.Score, password.MaxScore, s.Label.Message())
					continue
				}
				fmt.Fprintln(out, pw)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&cfg.Length, "length", "l", def.Length, "password length (word count is length/5 in memorable mode)")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(def.Mode), "random, memorable or dashed")
	cmd.Flags().BoolVar(&cfg.Lowercase, "lowercase", def.Lowercase, "include lowercase letters")
	cmd.Flags().BoolVar(&cfg.Uppercase, "uppercase", def.Uppercase, "include uppercase letters")
	cmd.Flags().BoolVar(&cfg.Numbers, "numbers", def.Numbers, "include digits")
	cmd.Flags().BoolVar(&cfg.Symbols, "symbols", def.Symbols, "include symbols")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().BoolVarP(&showStrength, "show-strength", "s", false, "print the strength next to each password")

	return cmd
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Score a password's strength",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := password.ScoreStrength(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d %s (%s)\n", s.Score, password.MaxScore, s.Label, s.Label.Message())
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var name, dir string

	cmd := &cobra.Command{
		Use:   "export <password>",
		Short: "Save a password to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := export.New(args[0], name)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to export")
				return nil
			}
			path, err := f.Save(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", export.DefaultName, "file name without extension")
	cmd.Flags().StringVar(&dir, "dir", envOr("DSNPASS_EXPORT_DIR", "."), "directory to write into")

	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
