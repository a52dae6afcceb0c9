package keiri_mock

import (
	"testing"

	"github.com/zeebo/assert"
)

// SetupFunc prepares one fixture and returns its teardown, nil when
// there is nothing to clean up.
type SetupFunc func(t *testing.T) func() error

type SetupListFunc []SetupFunc

// Suite runs setups in order, the test body, then teardowns in
// reverse.
func Suite(t *testing.T, name string, setups SetupListFunc, test func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		teardowns := []func() error{}
		defer func() {
			for i := len(teardowns) - 1; i >= 0; i-- {
				assert.Nil(t, teardowns[i]())
			}
		}()

		for _, setup := range setups {
			if teardown := setup(t); teardown != nil {
				teardowns = append(teardowns, teardown)
			}
		}

		test(t)
	})
}
