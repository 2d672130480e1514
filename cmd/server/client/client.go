// Package client provides commands that call the booking service over gRPC
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hotel-api/internal/handlers/hotel/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	hotelID    string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the booking service",
	Long:  `Client commands make real gRPC requests against a running server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&hotelID, "hotel", "", "Hotel ID (server default when empty)")

	ClientCmd.AddCommand(getHotelCmd)
	ClientCmd.AddCommand(bookCmd)
	ClientCmd.AddCommand(resetCmd)
	ClientCmd.AddCommand(randomizeCmd)
}

// createBookingClient creates a booking service client
func createBookingClient() (v1alpha1.BookingServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBookingServiceClient(conn), cleanup, nil
}

// newRequest builds a request carrying the hotel flag plus extra fields
func newRequest(fields map[string]interface{}) (*structpb.Struct, error) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if hotelID != "" {
		fields[v1alpha1.FieldHotelID] = hotelID
	}
	return structpb.NewStruct(fields)
}

func printResponse(cmd *cobra.Command, resp *structpb.Struct) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
