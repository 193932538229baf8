// Package proto holds the generated jobledger.v1 messages and Connect
// services. Money travels as decimal strings.
//
// Regenerate from the repository root after editing proto/:
//
//	go run github.com/bufbuild/buf/cmd/buf@v1.73.0 generate
package proto
