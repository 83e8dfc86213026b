package cmd

import (
	"errors"
	"fmt"
	"github.com/semlayer/go-cubejs/auth"
	"github.com/semlayer/go-cubejs/cubejs"
	"github.com/semlayer/go-cubejs/log"
	"github.com/semlayer/go-cubejs/retry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	log2 "log"
	"os"
	"strings"
)

// Environment variables prefixed with "CUBEJS_" can override settings e.g. "CUBEJS_TOKEN"
const envVarPrefix = "cubejs"

var cfgFile string
var logger log.Logger

var rootCmd = &cobra.Command{
	Use:   os.Args[0] + " --host [HOST] --token [TOKEN] COMMAND",
	Short: "Query and inspect Cube deployments from the command line",
}

// Execute runs the CLI
func Execute() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log2.Fatalf("unable to initialize logger: %v", err)
	}

	logger = log.NewZapLogger(zapLogger)

	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.String("host", "", "base URL of the Cube deployment")
	flags.String("token", "", "API token sent in the Authorization header")
	flags.Duration("timeout", cubejs.DefaultRequestTimeout, "per request timeout")
	flags.Int("max-attempts", retry.DefaultPolicy().MaxAttempts, "total attempts for queries that are still warming up")
	flags.Bool("request-logging", false, "enable request logging")
	flags.StringP("output", "o", "table", "output format. options: table,json")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			viper.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(metaCmd)

	cobra.OnInitialize(initialize)

	viper.SetEnvPrefix(envVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requireConnectionFlags(cmd *cobra.Command, args []string) error {
	if viper.GetString("host") == "" {
		return errors.New("host is required")
	}
	if viper.GetString("token") == "" {
		return errors.New("token is required")
	}
	return nil
}

func credentials() auth.Auth {
	return auth.Auth{
		Token: viper.GetString("token"),
		Host:  viper.GetString("host"),
	}
}

func newClient() *cubejs.Client {
	cfg := cubejs.NewClientConfigWithLogger(logger)

	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = cubejs.DefaultRequestTimeout
	}
	cfg.WithRequestTimeout(timeout)

	policy := retry.DefaultPolicy()
	if attempts := viper.GetInt("max-attempts"); attempts > 0 {
		policy.MaxAttempts = attempts
	}
	cfg.WithRetryPolicy(policy)

	if viper.GetBool("request-logging") {
		cfg.WithRequestLogging()
	}

	return cfg.NewClient()
}

func initialize() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Info("using config file",
				"file", viper.ConfigFileUsed())
		}
	}
}
