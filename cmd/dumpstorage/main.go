// Command dumpstorage prints F2FS and UFS diagnostics for bug reports.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danpilch/storagedump/pkg/collectors"
	"github.com/danpilch/storagedump/pkg/layout"
	"github.com/danpilch/storagedump/pkg/props"
	"github.com/danpilch/storagedump/pkg/report"
	"github.com/danpilch/storagedump/pkg/sysfs"
)

func newRootCmd(logger *logrus.Logger, env collectors.Env) *cobra.Command {
	return &cobra.Command{
		Use:                "dumpstorage",
		Short:              "Dump F2FS and UFS storage statistics",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := collectors.FromLayout(layout.Default(), env)
			if err != nil {
				return err
			}
			report.NewReporter(registry, logger).Generate(cmd.OutOrStdout())
			return nil
		},
	}
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	env := collectors.Env{
		Files:  sysfs.Host(),
		Props:  props.NewGetprop(""),
		Logger: logger,
	}
	if err := newRootCmd(logger, env).Execute(); err != nil {
		logger.WithError(err).Warn("Storage report incomplete")
	}
}
