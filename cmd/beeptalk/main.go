// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/beeptalk/internal/logger"
)

const (
	keyDevice    = "device"
	keyRate      = "sample_rate"
	keyChannels  = "channels"
	keyFrames    = "frames_per_buffer"
	keyCharSpeed = "char_ms"
)

var rootCmd = &cobra.Command{
	Use:           "beeptalk",
	Short:         "Play synthesized tones and robot speech",
	Version:       GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
	Long: `beeptalk plays sine tones, chords, glides, decoded clips and
beeping robot speech through an audio device, or renders them to WAV.

Settings come from flags, BEEPTALK_* environment variables and an optional
beeptalk.yaml, in that order of precedence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("verbose") {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return fmt.Errorf("failed to get verbose flag: %w", err)
			}
			logger.SetVerbose(verbose)
		}
		return loadConfig(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Config file (default ./beeptalk.yaml or ~/.config/beeptalk/beeptalk.yaml)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.StringP("device", "d", "headless", "Output device: "+strings.Join(deviceNames(), ", "))
	pf.Int("rate", 44100, "Sample rate in Hz")
	pf.Int("channels", 2, "Output channels")
	pf.Int("frames", 64, "Frames per buffer")

	_ = viper.BindPFlag(keyDevice, pf.Lookup("device"))
	_ = viper.BindPFlag(keyRate, pf.Lookup("rate"))
	_ = viper.BindPFlag(keyChannels, pf.Lookup("channels"))
	_ = viper.BindPFlag(keyFrames, pf.Lookup("frames"))

	viper.SetDefault(keyCharSpeed, 100)
}

// loadConfig reads the config file if there is one. A missing default
// file is fine, a missing explicit one is not.
func loadConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("BEEPTALK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("beeptalk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/beeptalk")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	logger.Debug("loaded config", "file", viper.ConfigFileUsed())
	return nil
}

func setupVersion() {
	rootCmd.SetVersionTemplate(GetVersionInfo() + "\n")
}

func Execute() {
	setupVersion()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
