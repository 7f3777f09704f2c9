// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/beeptalk/clip"
	"github.com/ik5/beeptalk/seq"
)

const flagMillis = "ms"

var toneCmd = &cobra.Command{
	Use:   "tone CODE",
	Short: "Play a sine tone",
	Long: `Play a sine tone. CODE is the frequency in hundredths of a hertz,
so 44000 is concert A.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := parseCodes(args)
		if err != nil {
			return err
		}
		millis, err := cmd.Flags().GetInt(flagMillis)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flagMillis, err)
		}
		return play(cmd.Context(), newBuilder().Wave(codes[0], millis))
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord CODE...",
	Short: "Play several tones at once",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := parseCodes(args)
		if err != nil {
			return err
		}
		millis, err := cmd.Flags().GetInt(flagMillis)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flagMillis, err)
		}
		chord, err := newBuilder().Chord(codes, millis)
		if err != nil {
			return err
		}
		return play(cmd.Context(), chord)
	},
}

var glideCmd = &cobra.Command{
	Use:   "glide FROM TO",
	Short: "Slide from one tone to another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := parseCodes(args)
		if err != nil {
			return err
		}
		millis, err := cmd.Flags().GetInt(flagMillis)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flagMillis, err)
		}

		b := newBuilder()
		glide := b.Transition(codes[0], codes[1], millis)
		return play(cmd.Context(), b.Bookend(glide, 10))
	},
}

var clipCmd = &cobra.Command{
	Use:   "clip FILE",
	Short: "Play a WAV, AIFF, MP3 or Ogg Vorbis file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loops, err := cmd.Flags().GetInt("loops")
		if err != nil {
			return fmt.Errorf("failed to get loops flag: %w", err)
		}

		table, err := clip.LoadFile(nil, args[0], viper.GetInt(keyRate))
		if err != nil {
			return err
		}
		return play(cmd.Context(), seq.NewRepeater(table, loops))
	},
}

func init() {
	for _, c := range []*cobra.Command{toneCmd, chordCmd, glideCmd} {
		c.Flags().Int(flagMillis, 500, "Duration in milliseconds")
		rootCmd.AddCommand(c)
	}

	clipCmd.Flags().IntP("loops", "n", 1, "Number of times to play the clip")
	rootCmd.AddCommand(clipCmd)
}

// parseCodes reads frequency codes. Zero is allowed and means silence.
func parseCodes(args []string) ([]int, error) {
	codes := make([]int, len(args))
	for i, a := range args {
		c, err := strconv.Atoi(a)
		if err != nil || c < 0 {
			return nil, fmt.Errorf("invalid frequency code %q", a)
		}
		codes[i] = c
	}
	return codes, nil
}
