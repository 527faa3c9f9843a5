// Package client implements the binary-channel Vanta client.
//
// The client turns channel-agnostic requests built from the field package
// into compact RPC envelopes, ships them over a pluggable Transport, and
// decodes the responses back into typed columns. Encoding and framing live
// in the wire package; this package owns orchestration, concurrency,
// instrumentation and error surfacing.
//
// # Architecture
//
//	field.InsertRequest ─▶ wire.EncodeInsert ─▶ wire.MarshalInsertRequest
//	        │                                           │
//	        │                                     Transport.Do
//	        │                                           │
//	field.IDs ◀─ wire.ToIDs ◀─ wire.UnmarshalInsertResponse
//
// The default Transport speaks HTTP with optional zstd request compression
// and transparent response decompression. Any implementation of the
// Transport interface can replace it, which is how tests exercise the full
// encode and decode path without a server.
//
// # Usage
//
//	c, err := client.NewClient(client.Params{
//		Config: client.FromEndpoint("http://localhost:19530"),
//	})
//	if err != nil {
//		return err
//	}
//
//	ids, err := c.Insert(ctx, &field.InsertRequest{
//		Collection: "books",
//		Fields:     []field.Field{idCol, vecCol},
//	})
//
// Search accepts multiple requests and fans them out concurrently, bounded
// by Config.MaxConcurrentSearches; results come back in request order.
//
// # Error Handling
//
// Client-side validation failures wrap the field package sentinels
// (field.ErrSchemaMismatch and friends) and abort before any bytes are
// sent. Server-reported errors are surfaced unchanged as
// "server error <code>: <reason>".
package client
