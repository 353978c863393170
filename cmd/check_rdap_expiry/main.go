// check_rdap_expiry is a Nagios plugin reporting how many days remain before
// a domain registration expires, using RDAP as its only data source.
//
//	check_rdap_expiry example.com
//	check_rdap_expiry -w @15:30 -c @~:15 example.com
//
// It prints exactly one status line on stdout, prefixed EXPIRATION, and
// exits 0/1/2/3 for OK/WARNING/CRITICAL/UNKNOWN. Every flag can also be set
// through CHECK_RDAP_* environment variables or an optional --config file.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	rdapexpiry "github.com/datum-labs/check-rdap-expiry"
)

const envPrefix = "CHECK_RDAP"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Monitoring systems parse stdout unconditionally, so even argument
		// and configuration mistakes get the one-line UNKNOWN treatment.
		fmt.Printf("EXPIRATION UNKNOWN - %v\n", err)
		os.Exit(3)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "check_rdap_expiry <domain>",
		Short:         "Nagios check of domain registration expiry via RDAP",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			return run(v, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringP("warning", "w", rdapexpiry.DefaultWarningRange,
		"warning range spec for days to expiration")
	fl.StringP("critical", "c", rdapexpiry.DefaultCriticalRange,
		"critical range spec for days to expiration")
	fl.Duration("timeout", 15*time.Second, "per-request HTTP timeout")
	fl.String("bootstrap-url", rdapexpiry.IANADNSBootstrapURL,
		"IANA RDAP bootstrap document URL")
	fl.String("user-agent", "", "override the HTTP User-Agent")
	fl.BoolP("verbose", "v", false, "debug logging on stderr")
	fl.StringVar(&cfgFile, "config", "", "config file (optional)")

	for _, key := range []string{"warning", "critical", "timeout", "bootstrap-url", "user-agent", "verbose"} {
		_ = v.BindPFlag(key, fl.Lookup(key))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(v *viper.Viper, domain string) error {
	threshold, err := rdapexpiry.NewThreshold(v.GetString("warning"), v.GetString("critical"))
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if v.GetBool("verbose") {
		l, err := zap.NewDevelopment() // stderr; stdout carries the status line
		if err != nil {
			return err
		}
		log = l
	}

	opts := []rdapexpiry.Option{
		rdapexpiry.WithLogger(log),
		rdapexpiry.WithBootstrapURL(v.GetString("bootstrap-url")),
	}
	if d := v.GetDuration("timeout"); d > 0 {
		opts = append(opts, rdapexpiry.WithTimeout(d))
	}
	if ua := v.GetString("user-agent"); ua != "" {
		opts = append(opts, rdapexpiry.WithUserAgent(ua))
	}

	check := rdapexpiry.NewCheck(rdapexpiry.New(opts...), threshold)
	result := check.Run(context.Background(), domain)

	fmt.Println(result.StatusLine())
	os.Exit(result.ExitCode())
	return nil
}
