// Command bike-go is a thin CLI wrapper around pkg/bike/kem. It is not
// part of the cryptographic core (spec.md §1 excludes a CLI harness
// from scope), but every complete module in this style ships a runnable
// entry point; this one exists to let a user sanity-check a build
// without writing Go.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/openbike/bike-go/pkg/bike/kem"
	"github.com/openbike/bike-go/pkg/bike/logging"
	"github.com/openbike/bike-go/pkg/bike/params"
)

func main() {
	level := flag.String("level", "1", "NIST security level: 1, 3, or 5")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	l, err := levelByName(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := run(l, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func levelByName(name string) (params.Level, error) {
	switch name {
	case "1":
		return params.Level1, nil
	case "3":
		return params.Level3, nil
	case "5":
		return params.Level5, nil
	default:
		return params.Level{}, fmt.Errorf("bike-go: unknown level %q (want 1, 3, or 5)", name)
	}
}

func run(level params.Level, logger logging.Logger) error {
	ctx := context.Background()
	scheme := kem.New(level, kem.WithLogger(logger))

	pk, sk, err := scheme.KeyGen(ctx)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}
	fmt.Printf("generated %s keypair (public key %d bytes)\n", level.Name, len(pk.H))

	ct, ss, err := scheme.Encapsulate(ctx, pk)
	if err != nil {
		return fmt.Errorf("encapsulate: %w", err)
	}
	fmt.Printf("encapsulated: ciphertext c0=%d bytes, c1=%d bytes\n", len(ct.C0), len(ct.C1))

	recovered, err := scheme.Decapsulate(ctx, sk, ct)
	if err != nil {
		return fmt.Errorf("decapsulate: %w", err)
	}

	match := len(ss) == len(recovered)
	for i := range ss {
		if ss[i] != recovered[i] {
			match = false
		}
	}
	fmt.Printf("decapsulated shared secret matches: %v\n", match)
	return nil
}
