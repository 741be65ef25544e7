package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/hailam/docpad/internal/adapters/factory"
	"github.com/hailam/docpad/internal/adapters/pst"
	adapterutils "github.com/hailam/docpad/internal/adapters/utils"
	"github.com/hailam/docpad/internal/application"
	"github.com/hailam/docpad/internal/config"
	"github.com/hailam/docpad/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// flags holds the values bound to the root command.
type flags struct {
	format   string
	output   string
	checksum bool
	quiet    bool
	verbose  bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "genfile <size> [output]",
		Short: "Generates a document of an exact byte size.",
		Long: fmt.Sprintf(`genfile generates a minimal valid document and pads it to an exact size.

Sizes are <number>[KB|MB], e.g. 150KB, 2.5MB or 10 (megabytes).
Supported formats: %s.`, formatList()),
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(cfg.LogLevel, f.verbose); err != nil {
				return err
			}

			// --- Composition Root: Initialize Adapters and Core Logic ---
			generatorFactory := factory.NewStaticGeneratorFactory(
				factory.WithChunkSize(cfg.ChunkSize),
				factory.WithMailStoreBackend(pst.NewCommandBackend(cfg.PSTHelper)),
			)
			sizeParser := adapterutils.NewUtilSizeParser()
			fileService := application.NewFileService(generatorFactory, sizeParser, ports.FileType(cfg.Format))
			// --- End Composition Root ---

			req := application.Request{
				SizeSpec: args[0],
				Format:   ports.FileType(f.format),
				OutPath:  f.output,
				Checksum: f.checksum,
			}
			if len(args) == 2 {
				if req.OutPath != "" && req.OutPath != args[1] {
					return fmt.Errorf("output given twice: '%s' and '%s'", args[1], req.OutPath)
				}
				req.OutPath = args[1]
			}

			var s *spinner.Spinner
			if !f.quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
				s.Suffix = " generating " + args[0]
				s.Start()
			}
			res, err := fileService.CreateFile(req)
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			printResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: "+formatList())
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Path to the output file (default output_<SIZE>.<format>)")
	cmd.Flags().BoolVar(&f.checksum, "checksum", false, "Print an xxhash64 checksum of the result")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Disable the progress spinner")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func printResult(cmd *cobra.Command, res *application.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully generated %s\n", res.Path)
	fmt.Fprintf(out, "  size:     %d bytes (~%.2f MB, %s)\n",
		res.Size, float64(res.Size)/(1024*1024), humanize.IBytes(uint64(res.Size)))
	fmt.Fprintf(out, "  skeleton: %d bytes\n", res.SkeletonSize)
	switch {
	case res.Entry != "":
		fmt.Fprintf(out, "  padding:  %d bytes in %s\n", res.Padding, res.Entry)
	case res.Comment == 0:
		fmt.Fprintf(out, "  padding:  %d bytes\n", res.Padding)
	}
	if res.Comment > 0 {
		fmt.Fprintf(out, "  padding:  %d bytes in archive comment\n", res.Comment)
	}
	if res.Checksum != "" {
		fmt.Fprintf(out, "  xxhash64: %s\n", res.Checksum)
	}
}

func setLogLevel(level string, verbose bool) error {
	if verbose {
		level = "debug"
	}
	lvl, err := logging.LevelFromString(level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	logging.SetAllLoggers(lvl)
	return nil
}

func formatList() string {
	names := make([]string, len(ports.FileTypes))
	for i, t := range ports.FileTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}
