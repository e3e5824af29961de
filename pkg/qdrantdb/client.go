package qdrantdb

import (
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

type Client struct {
	qdrant *qdrant.Client
}

func NewClient(host string, port int) (*Client, error) {
	c, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port, // gRPC port
	})
	if err != nil {
		return nil, fmt.Errorf("connect qdrant %s:%d: %w", host, port, err)
	}
	return &Client{qdrant: c}, nil
}

func (c *Client) Close() error {
	return c.qdrant.Close()
}
