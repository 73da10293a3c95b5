// Package api provides the HTTP transport shared by the Steadfast resource
// clients.
//
// # Overview
//
// This package contains the low-level [Client] that talks to the Steadfast
// REST API. Each entity family has its own subpackage:
//
//   - [order]: single and bulk order creation
//   - [tracking]: delivery status by consignment id, invoice or tracking code
//   - [balance]: current account balance
//   - [returns]: return requests
//   - [payment]: payments and their consignments
//   - [location]: police station lookup
//
// # Client Pattern
//
// Resource clients wrap one shared transport:
//
//	tr, err := api.NewClient(api.Config{
//	    BaseURL: api.DefaultBaseURL,
//	    Timeout: 30 * time.Second,
//	    Retry:   httputil.DefaultPolicy(),
//	    Headers: map[string]string{"Api-Key": key, "Secret-Key": secret},
//	})
//	status, err := tracking.NewClient(tr).ByInvoice(ctx, "INV-001")
//
// The transport handles:
//   - URL joining and default headers (credentials, JSON content type, request id)
//   - per-attempt timeouts and retry with exponential backoff for connection
//     failures and timeouts
//   - mapping HTTP error responses to [errors.Error] codes
//
// # Adding a New Resource
//
//  1. Create a subpackage: pkg/api/<resource>/
//  2. Define response structs with JSON tags; use [Number] for amounts
//  3. Validate inputs with [validate] before calling [Client.Do]
//  4. Expose it from the [steadfast] facade
//
// [order]: github.com/matzehuels/steadfast/pkg/api/order
// [tracking]: github.com/matzehuels/steadfast/pkg/api/tracking
// [balance]: github.com/matzehuels/steadfast/pkg/api/balance
// [returns]: github.com/matzehuels/steadfast/pkg/api/returns
// [payment]: github.com/matzehuels/steadfast/pkg/api/payment
// [location]: github.com/matzehuels/steadfast/pkg/api/location
// [validate]: github.com/matzehuels/steadfast/pkg/validate
// [steadfast]: github.com/matzehuels/steadfast/pkg/steadfast
// [errors.Error]: github.com/matzehuels/steadfast/pkg/errors.Error
package api
