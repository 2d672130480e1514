package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hotel-api/internal/handlers/hotel/v1alpha1"
)

var bookCmd = &cobra.Command{
	Use:   "book [num-rooms] [guest-name]",
	Short: "Book rooms for a guest",
	Long: `Book rooms with the shortest walk between them. Examples:

  book 3 "Ada Lovelace"
  book 5 Grace --hotel default`,
	Args: cobra.ExactArgs(2),
	RunE: book,
}

func book(cmd *cobra.Command, args []string) error {
	numRooms, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("num-rooms must be a number: %w", err)
	}

	client, cleanup, err := createBookingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := newRequest(map[string]interface{}{
		v1alpha1.FieldNumRooms:  numRooms,
		v1alpha1.FieldGuestName: args[1],
	})
	if err != nil {
		return err
	}

	resp, err := client.BookRooms(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to book rooms: %w", err)
	}

	return printResponse(cmd, resp)
}
