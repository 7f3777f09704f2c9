// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/beeptalk"
	"github.com/ik5/beeptalk/voice"
)

// maxRenderSeconds caps offline renders.
const maxRenderSeconds = 600

var sayCmd = &cobra.Command{
	Use:   "say TEXT...",
	Short: "Speak text as robot beeps while printing it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := utterance(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return speak(cmd.Context(), cmd.OutOrStdout(), u)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render TEXT...",
	Short: "Render robot speech to a WAV file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
		u, err := utterance(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}
		defer u.Close()

		if out == "-" {
			return renderTo(cmd.OutOrStdout(), u)
		}
		return renderFile(out, u)
	},
}

func init() {
	for _, c := range []*cobra.Command{sayCmd, renderCmd} {
		c.Flags().Int("char-ms", 100, "Milliseconds per character")
		c.Flags().Float64("beep", 0, "Beep each character around this frequency in Hz instead of babbling")
		rootCmd.AddCommand(c)
	}
	renderCmd.Flags().StringP("output", "o", "speech.wav", `Output WAV file, "-" for stdout`)
}

func utterance(cmd *cobra.Command, text string) (*voice.Utterance, error) {
	charMillis := viper.GetInt(keyCharSpeed)
	if cmd.Flags().Changed("char-ms") {
		var err error
		if charMillis, err = cmd.Flags().GetInt("char-ms"); err != nil {
			return nil, fmt.Errorf("failed to get char-ms flag: %w", err)
		}
	}
	hz, err := cmd.Flags().GetFloat64("beep")
	if err != nil {
		return nil, fmt.Errorf("failed to get beep flag: %w", err)
	}

	sp := voice.NewSpeaker(newBuilder(), charMillis)
	if hz > 0 {
		return sp.Beep(text, hz), nil
	}
	return sp.Say(text), nil
}

// speak plays u and prints its text in step with the audio.
func speak(parent context.Context, w io.Writer, u *voice.Utterance) error {
	e, release, err := newEngine()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(parent)
	defer cancel()

	played := make(chan error, 1)
	go func() {
		_, err := e.PlayAll(ctx, u.Sequence())
		// The stream is closed, so the ticks are final. Closing lets
		// Reveal drain them and return.
		u.Close()
		played <- err
	}()

	_ = u.Reveal(ctx, func(r rune) { fmt.Fprint(w, string(r)) })
	fmt.Fprintln(w)

	return errors.Join(<-played, release())
}

func renderTo(w io.Writer, u *voice.Utterance) error {
	rate := viper.GetInt(keyRate)
	pcm, err := beeptalk.RenderPCM16(u.Sequence(), rate*maxRenderSeconds)
	if err != nil {
		return err
	}
	return beeptalk.WriteWAV16(w, rate, pcm)
}

func renderFile(path string, u *voice.Utterance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	rate := viper.GetInt(keyRate)
	_, err = beeptalk.RenderWAV(f, u.Sequence(), rate, rate*maxRenderSeconds)
	return err
}
