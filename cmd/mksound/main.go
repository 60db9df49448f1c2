// Command mksound renders a built-in sound effect to a WAV file, e.g. to
// tweak it in an editor and load it back through [audio] kick or write.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"panim/studio/sound"
)

func main() {
	var (
		name    = flag.String("id", "kick", "Sound to render (kick, write).")
		outPath = flag.String("out", "", "Output .wav file.")
		rate    = flag.Int("rate", sound.DefaultSampleRate, "Sample rate in Hz.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mksound -out kick.wav [-id kick] [-rate 44100]")
	}
	id, ok := parseID(*name)
	if !ok {
		fatalf("unknown sound: %s", *name)
	}
	if *rate < 8000 || *rate > 192000 {
		fatalf("rate out of range: %d", *rate)
	}
	if err := render(*outPath, id, *rate); err != nil {
		fatalf("render: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func parseID(s string) (sound.ID, bool) {
	for _, id := range []sound.ID{sound.Kick, sound.Write} {
		if strings.EqualFold(s, id.String()) {
			return id, true
		}
	}
	return sound.None, false
}

func render(path string, id sound.ID, rate int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	if err := sound.WriteWAV(bw, rate, sound.Samples(id, rate)); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
