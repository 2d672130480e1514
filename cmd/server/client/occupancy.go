package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Free every room",
	Args:  cobra.NoArgs,
	RunE:  reset,
}

var randomizeCmd = &cobra.Command{
	Use:   "randomize",
	Short: "Fill rooms at random",
	Args:  cobra.NoArgs,
	RunE:  randomize,
}

func reset(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBookingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := newRequest(nil)
	if err != nil {
		return err
	}

	resp, err := client.ResetBookings(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to reset bookings: %w", err)
	}

	return printResponse(cmd, resp)
}

func randomize(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBookingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := newRequest(nil)
	if err != nil {
		return err
	}

	resp, err := client.RandomizeOccupancy(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to randomize occupancy: %w", err)
	}

	return printResponse(cmd, resp)
}
