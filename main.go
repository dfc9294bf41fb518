package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/filescope/filescope/pkg/filescope"
	"github.com/filescope/filescope/pkg/profiling"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	driveName  string
	cpuProfile string
	memProfile string
	pprofAddr  string

	rootCmd = &cobra.Command{
		Use:   "filescope",
		Short: "Multi-pane terminal file browser",
		Long: `filescope is a keyboard-driven terminal file browser with a
directory tree, file and data previews, a log pane and a command bar.
Drive presets can point at local disk, FTP, HTTP index pages or WebDAV.`,
		RunE: run,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ~/.filescope/config.yaml)")
	rootCmd.Flags().StringVar(&driveName, "drive", "",
		"name of the drive preset to open")
	rootCmd.Flags().StringVar(&cpuProfile, "cpuprofile", "",
		"write cpu profile to `file`")
	rootCmd.Flags().StringVar(&memProfile, "memprofile", "",
		"write memory profile to `file`")
	rootCmd.Flags().StringVar(&pprofAddr, "pprof", "",
		"start pprof http server on `address` (e.g. localhost:6060)")
}

func run(_ *cobra.Command, _ []string) error {
	if pprofAddr != "" {
		go func() {
			if err := http.ListenAndServe(pprofAddr, nil); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}
	if cpuProfile != "" {
		stop := profiling.DoCPUProfiling(cpuProfile)
		defer stop()
	}
	if memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(memProfile)
		defer writeMemProfile()
	}
	return filescope.Main(cfgFile, driveName)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
