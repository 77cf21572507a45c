package eni

import (
	"context"

	"github.com/elC0mpa/eni-doctor/model"
)

// Lister returns every ENI visible to the caller
type Lister interface {
	ListNetworkInterfaces(ctx context.Context) ([]model.NetworkInterface, error)
}

// Deleter deletes a single ENI by ID
type Deleter interface {
	DeleteNetworkInterface(ctx context.Context, id string) error
}
