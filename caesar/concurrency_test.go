package caesar_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/ciphra/caesar"
	"github.com/stretchr/testify/require"
)

// TestConcurrentRoundTrips hammers Encrypt/Decrypt from many goroutines.
// The transforms are pure functions over their inputs, so running this
// under -race must stay silent and every round trip must restore its own
// plaintext.
func TestConcurrentRoundTrips(t *testing.T) {
	const (
		workers = 16
		rounds  = 200
	)

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				plain := fmt.Sprintf("WORKER %d MESSAGE %d_", seed, i)
				key := seed*31 + i - 500

				enc, err := caesar.Encrypt(plain, key)
				if err != nil {
					errs <- err

					return
				}
				dec, err := caesar.Decrypt(enc, key)
				if err != nil {
					errs <- err

					return
				}
				if dec != plain {
					errs <- fmt.Errorf("round trip mismatch: %q != %q", dec, plain)

					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
