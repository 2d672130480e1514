package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getHotelCmd = &cobra.Command{
	Use:   "get-hotel",
	Short: "Show every floor with occupancy",
	Args:  cobra.NoArgs,
	RunE:  getHotel,
}

func getHotel(cmd *cobra.Command, _ []string) error {
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

	resp, err := client.GetHotel(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get hotel: %w", err)
	}

	return printResponse(cmd, resp)
}
