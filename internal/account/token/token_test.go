package token

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestIssuer_Shapes(t *testing.T) {
	i := New()

	tests := []struct {
		name   string
		mint   func() string
		length int
	}{
		{name: "activation", mint: i.NewActivationToken, length: 27},
		{name: "reset", mint: i.NewResetToken, length: 27},
		{name: "password", mint: i.NewPassword, length: 20},
		{name: "rss", mint: i.NewRssID, length: 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tt.mint()
			assert.Len(t, tok, tt.length)
			assert.Regexp(t, urlSafe, tok)
		})
	}
}

func TestIssuer_NoCollisionsUnderConcurrency(t *testing.T) {
	i := New()
	const workers, perWorker = 8, 500

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for n := 0; n < perWorker; n++ {
				local = append(local, i.NewResetToken())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, tok := range local {
				seen[tok] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestIssuer_DeterministicSource(t *testing.T) {
	i := New(WithRandom(bytes.NewReader(bytes.Repeat([]byte{0xff}, 64))))
	assert.Equal(t, "_____________________w", i.NewRssID())
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestIssuer_PanicsOnBrokenSource(t *testing.T) {
	i := New(WithRandom(brokenReader{}))
	require.PanicsWithValue(t, "token: read random bytes: entropy exhausted", func() {
		i.NewActivationToken()
	})
}
