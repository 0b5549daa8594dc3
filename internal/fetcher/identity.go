package fetcher

import "math/rand/v2"

// defaultIdentities is the built-in pool of browser User-Agent strings.
// The statements site tolerates scripted access better when the
// requesting identity varies between attempts.
var defaultIdentities = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0",
}

// IdentityPool hands out client-identity strings for the rotating
// User-Agent header. It holds no mutable state beyond its fixed pool,
// so a single pool can be shared by any number of clients; there is no
// package-level instance.
type IdentityPool struct {
	identities []string
}

// NewIdentityPool creates a pool from the given identities, falling
// back to the built-in browser pool when none are provided.
func NewIdentityPool(identities ...string) *IdentityPool {
	if len(identities) == 0 {
		identities = defaultIdentities
	}
	return &IdentityPool{identities: identities}
}

// Next returns a randomly drawn identity from the pool.
func (p *IdentityPool) Next() string {
	return p.identities[rand.IntN(len(p.identities))]
}

// Size returns the number of identities in the pool.
func (p *IdentityPool) Size() int {
	return len(p.identities)
}
