// Package errors provides the structured error type shared by every layer of
// hotel-api.
//
// Errors carry a Code that the transports translate: gRPC handlers call
// ToGRPCError, the REST server uses Code.HTTPStatus. Metadata attached with
// WithMeta survives both conversions.
//
//	err := errors.ResourceExhaustedf("not enough available rooms: only %d rooms available", n).
//	    WithMeta("available", n)
//
// Repositories return NotFound for missing hotels and wrap driver failures
// with Wrap. The allocation engine returns InvalidArgument for a room count
// outside the accepted range and ResourceExhausted when the hotel cannot
// satisfy the request.
//
// Configuration and input checks build their errors with ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("guest_name", input.GuestName, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
