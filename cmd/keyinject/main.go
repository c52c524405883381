package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gtaradio/internal/evdev"
	"gtaradio/internal/logging"
)

const (
	defaultDevice = "/dev/input/event0"
	defaultKey    = "a"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("keyinject", flag.ContinueOnError)
	fs.SetOutput(stderr)
	device := fs.String("device", defaultDevice, "input device node to write to")
	key := fs.String("key", defaultKey, "key name or decimal key code")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: keyinject [-device path] [-key name]")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %q\n", fs.Args())
		fs.Usage()
		return 1
	}

	if err := inject(*device, *key); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func inject(path, keyName string) (err error) {
	code, err := evdev.KeyCode(keyName)
	if err != nil {
		return err
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := dev.TapKey(code); err != nil {
		return err
	}

	logging.Debug("Tapped key %s (code %d) on %s", keyName, code, path)
	return nil
}
