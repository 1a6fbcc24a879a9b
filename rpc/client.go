package rpc

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
)

// ClientInterface is the interface that defines the implementation of all the endpoints
type ClientInterface interface {
	RolldownClientInterface
}

// ClientFactoryInterface interface for the client factory
type ClientFactoryInterface interface {
	NewClient(url string, key *ecdsa.PrivateKey) ClientInterface
}

// ClientFactory is the implementation of the rolldown client factory
type ClientFactory struct{}

// NewClient returns an implementation of the rolldown node client
func (f *ClientFactory) NewClient(url string, key *ecdsa.PrivateKey) ClientInterface {
	return NewClient(url, key)
}

// Client wraps all the available endpoints of the rolldown node. Write calls are signed with key,
// a client without key can only query.
type Client struct {
	url string
	key *ecdsa.PrivateKey
}

// NewClient returns a client ready to be used
func NewClient(url string, key *ecdsa.PrivateKey) *Client {
	return &Client{
		url: url,
		key: key,
	}
}

// Address returns the account the client signs for
func (c *Client) Address() string {
	if c.key == nil {
		return ""
	}
	return crypto.PubkeyToAddress(c.key.PublicKey).Hex()
}
