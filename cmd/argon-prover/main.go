package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/argon-zk/argon-prover/internal/argon-prover/prove"
	argonprover "github.com/argon-zk/argon-prover/pkg/argon-prover"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	prove.SetBackendLogger(log.Level(zerolog.WarnLevel))

	app := &cli.App{
		Name:  "argon-prover",
		Usage: "generate and verify zero-knowledge proofs of VM execution traces",
		Commands: []*cli.Command{
			proveCommand(log),
			verifyCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func proveCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "prove",
		Usage:     "prove a trace read from a JSON file",
		ArgsUsage: "<trace.json>",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "k",
				Usage: "circuit size parameter (2^k rows); 0 picks the smallest fit",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the proof output JSON to `FILE` instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "sequential",
				Usage: "prove chunks one at a time",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "bound the proving worker pool (0 = available parallelism)",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "verify the proof before writing it out",
			},
			&cli.StringFlag{
				Name:  "vk-out",
				Usage: "write the verifying key to `FILE` for later standalone verification",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one trace file argument")
			}

			data, err := os.ReadFile(c.Args().First())
			if err != nil {
				return fmt.Errorf("failed to read trace: %w", err)
			}

			tr, err := argonprover.ParseTrace(data)
			if err != nil {
				return err
			}

			k := uint32(c.Uint("k"))
			if k == 0 {
				k = argonprover.SuggestK(tr.Len())
			}

			config := argonprover.DefaultConfig().
				WithK(k).
				WithParallel(!c.Bool("sequential")).
				WithNumThreads(c.Int("threads"))

			log.Info().
				Uint32("k", k).
				Int("steps", tr.Len()).
				Msg("generating proof")

			prover, err := argonprover.NewProverWithLogger(config, log)
			if err != nil {
				return err
			}

			output, err := prover.GenerateProof(context.Background(), tr)
			if err != nil {
				return err
			}

			if c.Bool("check") {
				ok, err := prover.Verifier().VerifyProof(output)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("generated proof failed verification")
				}
				log.Info().Msg("proof verified")
			}

			if path := c.String("vk-out"); path != "" {
				vkData, err := prover.ExportVerifyingKey()
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, vkData, 0o644); err != nil {
					return fmt.Errorf("failed to write verifying key: %w", err)
				}
				log.Info().Str("path", path).Int("bytes", len(vkData)).Msg("verifying key written")
			}

			encoded, err := output.Encode()
			if err != nil {
				return err
			}

			if path := c.String("output"); path != "" {
				if err := os.WriteFile(path, encoded, 0o644); err != nil {
					return fmt.Errorf("failed to write proof: %w", err)
				}
				log.Info().Str("path", path).Int("bytes", len(encoded)).Msg("proof written")
				return nil
			}

			fmt.Println(string(encoded))
			return nil
		},
	}
}

func verifyCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "verify a proof output read from a JSON file",
		ArgsUsage: "<proof.json>",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:     "k",
				Usage:    "circuit size parameter the proof was generated with",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "vk",
				Usage: "load the verifying key from `FILE` (as written by prove --vk-out)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one proof file argument")
			}

			data, err := os.ReadFile(c.Args().First())
			if err != nil {
				return fmt.Errorf("failed to read proof: %w", err)
			}

			output, err := argonprover.DecodeProofOutput(data)
			if err != nil {
				return err
			}

			config := argonprover.DefaultConfig().WithK(uint32(c.Uint("k")))

			var verifier *argonprover.Verifier
			if path := c.String("vk"); path != "" {
				vkData, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read verifying key: %w", err)
				}
				verifier, err = argonprover.NewVerifierWithKey(config, vkData)
				if err != nil {
					return err
				}
			} else {
				verifier, err = argonprover.NewVerifier(config)
				if err != nil {
					return err
				}
			}

			ok, err := verifier.VerifyProof(output)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("proof is invalid")
			}

			log.Info().
				Int("opcode_count", output.Metadata.OpcodeCount).
				Uint64("gas_used", output.Metadata.GasUsed).
				Msg("proof is valid")
			return nil
		},
	}
}
