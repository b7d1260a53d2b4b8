package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/allculture/cmd/allculture/commands"
	"github.com/fivetwenty-io/allculture/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "allculture",
	Short: "all.culture.ru API CLI",
	Long: `A command-line interface for the all.culture.ru public API.

Query events, places, organizations and the reference collections with the
same filters the API accepts, or print the request URL a query resolves to.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("metrics") {
			return commands.WriteMetrics(os.Stderr)
		}

		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.allculture/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API root URL (default "+constants.DefaultBaseURL+")")
	rootCmd.PersistentFlags().String("uploads-url", "", "image uploads root URL (default "+constants.DefaultUploadsURL+")")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatAuto, "output format (auto, table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")
	rootCmd.PersistentFlags().Duration("connect-timeout", constants.DefaultConnectTimeout, "TCP connect timeout")
	rootCmd.PersistentFlags().Duration("timeout", constants.ShortHTTPTimeout, "overall request timeout")
	rootCmd.PersistentFlags().Int("retry-max", constants.DefaultRetryMax, "retries on connection errors and 5xx responses")
	rootCmd.PersistentFlags().Bool("metrics", false, "print request metrics to stderr when done")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("uploads_url", rootCmd.PersistentFlags().Lookup("uploads-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("connect_timeout", rootCmd.PersistentFlags().Lookup("connect-timeout"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("retry_max", rootCmd.PersistentFlags().Lookup("retry-max"))
	_ = viper.BindPFlag("metrics", rootCmd.PersistentFlags().Lookup("metrics"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
	rootCmd.AddCommand(commands.NewPlacesCommand())
	rootCmd.AddCommand(commands.NewArticlesCommand())
	rootCmd.AddCommand(commands.NewCategoriesCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
	rootCmd.AddCommand(commands.NewLocalesCommand())
	rootCmd.AddCommand(commands.NewOrganizationsCommand())
	rootCmd.AddCommand(commands.NewURLCommand())
	rootCmd.AddCommand(commands.NewImageURLCommand())
	rootCmd.AddCommand(commands.NewDateCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.allculture/config.yml
		viper.AddConfigPath(filepath.Join(home, commands.ConfigDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("ALLCULTURE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
