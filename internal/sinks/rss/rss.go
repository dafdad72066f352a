// Package rss registers RSS publication identifiers. An identifier is minted
// for one username and never reused once released.
package rss

import "errors"

// maxMintAttempts bounds retries when a freshly generated id is taken.
const maxMintAttempts = 3

// ErrMintExhausted is returned when every generated id collided.
var ErrMintExhausted = errors.New("rss: could not mint a unique identifier")

// IDSource generates candidate identifiers.
type IDSource interface {
	NewRssID() string
}
