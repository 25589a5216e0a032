package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver"
	"github.com/chintanlad10/cubesolver/internal/ble"
	"github.com/chintanlad10/cubesolver/internal/protocol"
)

var (
	watchTimeout time.Duration
	watchHints   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Track a GoCube smart cube and suggest solutions",
	Long: `Connect to a GoCube smart cube over Bluetooth and mirror its moves
against the solver's cube model. With --hints, every move prints the
optimized solution for the current state.

The cube is assumed to start solved; press the GoCube's reset before
connecting or use a freshly solved cube.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 15*time.Second, "Scan timeout")
	watchCmd.Flags().BoolVar(&watchHints, "hints", false, "Print a solution after every move")
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, err := ble.NewClient()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Scanning for a GoCube...")
	if err := client.ConnectFirst(ctx, watchTimeout); err != nil {
		return err
	}
	defer client.Close()
	fmt.Printf("Connected to %s\n", client.DeviceName())

	var mu sync.Mutex
	cube := cubesolver.NewCube()

	client.SetMessageCallback(func(msg *protocol.Message) {
		if msg.Type != protocol.MsgTypeRotation {
			return
		}
		moves, err := protocol.DecodeRotation(msg.Payload)
		if err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "bad rotation payload: %v\n", err)
			}
			return
		}

		mu.Lock()
		defer mu.Unlock()
		for _, m := range moves {
			cube.ParseMove(m.Notation())
			fmt.Printf("%-3s", m.Notation())
		}
		fmt.Println()

		if cube.IsSolved() {
			fmt.Println("Solved!")
			return
		}
		if watchHints {
			// solve a copy so tracking stays in sync with the device
			scratch := cubesolver.NewCube()
			scratch.CopyState(cube.StateString())
			solution := cubesolver.Solve(scratch)
			if scratch.IsSolved() {
				optimized := cubesolver.CleanSolution(solution, true)
				fmt.Printf("  hint (%d moves): %s\n", len(optimized), cubesolver.SolutionToString(optimized))
			}
		}
	})

	fmt.Println("Tracking moves. Ctrl-C to stop.")
	<-ctx.Done()
	return nil
}
