// Package vsdc holds the VSDC/EBM domain rules that the gateway applies before anything is
// persisted or forwarded: item code generation, required-field validation, the code
// definition tables and the result envelope.
//
// Everything here is pure and safe for concurrent use.
package vsdc
