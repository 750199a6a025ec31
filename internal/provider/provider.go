// Package provider contains the upstream model clients the oracle command
// uses to generate text before it is mapped. The network call made here is
// the only blocking operation in the whole system.
package provider

import (
	"context"

	"github.com/negspace-ai/negspace/internal/inference"
)

// Provider is the interface for all upstream text-generation providers.
type Provider interface {
	ChatCompletion(ctx context.Context, req *inference.Request) (*inference.Response, error)
}
