package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/elC0mpa/eni-doctor/model"
	awsconfig "github.com/elC0mpa/eni-doctor/service/aws/config"
	awsec2 "github.com/elC0mpa/eni-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/eni-doctor/service/aws/sts"
	"github.com/elC0mpa/eni-doctor/service/flag"
	"github.com/elC0mpa/eni-doctor/service/logger"
	"github.com/elC0mpa/eni-doctor/service/orchestrator"
	"github.com/elC0mpa/eni-doctor/utils"
)

func main() {
	if err := Command().Execute(); err != nil {
		os.Exit(1)
	}
}

func Command() *cobra.Command {
	flagService := flag.NewService()

	cmd := &cobra.Command{
		Use:   "eni-doctor",
		Short: "Summarize the status of every AWS Elastic Network Interface",
		Long: `Summarize the status of every AWS Elastic Network Interface (ENI).
Optionally, delete every ENI with a status of "available".

Set ENI_DOCTOR_LOG to error, warn, info, debug or trace to adjust logging.
trace also logs every AWS request and response.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := flagService.GetParsedFlags()
			if err != nil {
				return err
			}
			return Run(cmd.Context(), flags)
		},
	}

	flagService.AddFlags(cmd.Flags())

	return cmd
}

func Run(ctx context.Context, flags model.Flags) error {
	log, logOpts, err := logger.FromEnv()
	if err != nil {
		return err
	}

	utils.ConfigureColors(os.Stdout)
	if !flags.NoBanner && utils.IsTerminal(os.Stdout) {
		utils.DrawBanner(os.Stdout)
		if utils.IsTerminal(os.Stderr) {
			utils.StartSpinner(os.Stderr)
		}
	}
	defer utils.StopSpinner()

	cfgService := awsconfig.NewService(log, logOpts.Trace)
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return err
	}

	stsService := awssts.NewService(awsCfg)
	ec2Service := awsec2.NewService(awsCfg, log)

	orchestratorService := orchestrator.NewService(stsService, ec2Service, awsCfg.Region, os.Stdout, log)

	return orchestratorService.Orchestrate(ctx, flags)
}
