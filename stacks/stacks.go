// Package stacks collects the NZ Companies Register stacks in deployment
// order.
package stacks

import (
	infra "github.com/nz-companies-register/infra"
	"github.com/nz-companies-register/infra/stacks/compute"
	"github.com/nz-companies-register/infra/stacks/database"
	"github.com/nz-companies-register/infra/stacks/monitoring"
	"github.com/nz-companies-register/infra/stacks/network"
	"github.com/nz-companies-register/infra/stacks/security"
	"github.com/nz-companies-register/infra/stacks/storage"
)

// All returns every stack in deployment order.
func All() []*infra.Stack {
	return []*infra.Stack{
		network.Stack,
		security.Stack,
		database.Stack,
		storage.Stack,
		compute.Stack,
		monitoring.Stack,
	}
}

// ByName returns the named stack, or nil.
func ByName(name string) *infra.Stack {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
