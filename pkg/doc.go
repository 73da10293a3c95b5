// Package pkg provides the libraries behind the steadfast client and CLI.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [steadfast] - Entry point: credentials, options and per-resource clients
//  2. [api] - Transport and resource clients (order, tracking, balance, returns, payment, location)
//  3. Support - [config], [errors], [validate], [httputil], [observability], [buildinfo]
//
// # Architecture
//
// A call flows through:
//
//	steadfast.Client (credentials, options)
//	         ↓
//	resource client (validate input, build payload)
//	         ↓
//	api.Client (headers, retries, timeouts, error mapping)
//	         ↓
//	typed response with defaults filled in
//
// # Quick Start
//
//	client, err := steadfast.New(steadfast.WithCredentials(apiKey, secretKey))
//	if err != nil {
//		return err
//	}
//	o, err := client.Orders().Create(ctx, order.CreateParams{
//		Invoice:          "INV-001",
//		RecipientName:    "John Doe",
//		RecipientPhone:   "01712345678",
//		RecipientAddress: "House 1, Road 2, Dhaka",
//		CODAmount:        1500,
//	})
//
// [steadfast]: github.com/matzehuels/steadfast/pkg/steadfast
// [api]: github.com/matzehuels/steadfast/pkg/api
// [config]: github.com/matzehuels/steadfast/pkg/config
// [errors]: github.com/matzehuels/steadfast/pkg/errors
// [validate]: github.com/matzehuels/steadfast/pkg/validate
// [httputil]: github.com/matzehuels/steadfast/pkg/httputil
// [observability]: github.com/matzehuels/steadfast/pkg/observability
// [buildinfo]: github.com/matzehuels/steadfast/pkg/buildinfo
package pkg
