package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/reginno/internal/config"
	"github.com/joshuapare/reginno/pkg/reginno"
)

var (
	convertOutput       string
	convertStdout       bool
	convertSourceDir    string
	convertPlaceholder  string
	convertNoSubstitute bool
	convertEncoding     string
	convertBOM          bool
	convertLF           bool
	convertStats        bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: <input> plus the configured suffix)")
	cmd.Flags().BoolVar(&convertStdout, "stdout", false, "Write to stdout instead of file")
	cmd.Flags().StringVar(&convertSourceDir, "source-dir", "", "Directory to replace in text values (default: the input file's directory)")
	cmd.Flags().StringVar(&convertPlaceholder, "placeholder", "", "Inno constant the source directory becomes (default: {app})")
	cmd.Flags().BoolVar(&convertNoSubstitute, "no-substitute", false, "Leave directories in text values untouched")
	cmd.Flags().StringVar(&convertEncoding, "encoding", "", "Input encoding when the file has no BOM (auto, utf8, utf16le, windows1252)")
	cmd.Flags().BoolVar(&convertBOM, "with-bom", false, "Include a UTF-8 byte-order mark")
	cmd.Flags().BoolVar(&convertLF, "lf", false, "End lines with LF instead of CRLF")
	cmd.Flags().BoolVar(&convertStats, "stats", false, "Print a summary table after converting")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.reg>",
		Short: "Convert a .reg file to an Inno Setup [Registry] section",
		Long: `The convert command reads a registry export and writes one Inno Setup
[Registry] entry per value. Occurrences of the source directory in text
values are replaced with an Inno constant so the installer writes the
installed location instead of the build machine's path.

Example:
  reginno convert settings.reg
  reginno convert settings.reg -o registry.iss --with-bom
  reginno convert settings.reg --source-dir "C:\Build\Out" --placeholder "{pf}\Vendor"
  reginno convert settings.reg --stdout --lf > registry.iss`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	inPath := args[0]

	// Can't specify both output file and stdout
	if convertOutput != "" && convertStdout {
		return fmt.Errorf("cannot specify both --output and --stdout")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyConvertFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	opts, err := convertOptions(cfg, inPath)
	if err != nil {
		return err
	}
	opts.Logger = log

	var (
		outPath string
		stats   *reginno.Stats
	)
	if convertStdout {
		stats, err = reginno.ConvertFileTo(inPath, os.Stdout, opts)
	} else {
		outPath = convertOutput
		if outPath == "" {
			outPath = inPath + cfg.Output.Suffix
		}
		printVerbose("Converting %s -> %s\n", inPath, outPath)
		stats, err = reginno.ConvertFile(inPath, outPath, opts)
	}
	if err != nil {
		return fmt.Errorf("convert %s: %w", inPath, err)
	}

	// The report goes to stderr when stdout carries the script.
	report := io.Writer(os.Stdout)
	if convertStdout {
		report = os.Stderr
	}

	if jsonOut && !convertStdout {
		result := map[string]interface{}{
			"input":   inPath,
			"output":  outPath,
			"stats":   stats,
			"success": true,
		}
		return printJSON(result)
	}
	if convertStats && !quiet {
		fmt.Fprintln(report, renderStats(stats))
	}
	if !convertStdout {
		printInfo("Wrote %d entries to %s\n", stats.Directives, outPath)
	}
	return nil
}

// applyConvertFlags lays flags that were given over the loaded config.
func applyConvertFlags(cfg *config.Config) {
	if convertSourceDir != "" {
		cfg.Substitution.SourceDir = convertSourceDir
	}
	if convertPlaceholder != "" {
		cfg.Substitution.Placeholder = convertPlaceholder
	}
	if convertNoSubstitute {
		cfg.Substitution.Disabled = true
	}
	if convertEncoding != "" {
		cfg.Input.Encoding = strings.ToLower(convertEncoding)
	}
	if convertBOM {
		cfg.Output.WithBOM = true
	}
	if convertLF {
		cfg.Output.LineEnding = "lf"
	}
}

func convertOptions(cfg *config.Config, inPath string) (reginno.Options, error) {
	opts := reginno.Options{
		NoSubstitution: cfg.Substitution.Disabled,
		InputEncoding:  cfg.Input.Encoding,
		LineEnding:     cfg.EOL(),
		WithBOM:        cfg.Output.WithBOM,
	}
	if cfg.Substitution.Disabled {
		return opts, nil
	}

	sub := reginno.Substitution{Dir: cfg.Substitution.SourceDir, Placeholder: cfg.Substitution.Placeholder}
	if sub.Dir == "" {
		def, err := reginno.DefaultSubstitution(inPath)
		if err != nil {
			return opts, err
		}
		sub.Dir = def.Dir
	}
	opts.Substitution = &sub
	return opts, nil
}
