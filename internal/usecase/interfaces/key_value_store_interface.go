package interfaces

import "context"

//go:generate mockgen -source=key_value_store_interface.go -destination=mocks/key_value_store_mock.go -package=mock_interfaces

// IKeyValueStore is durable local storage for opaque values.
//
// Get reports found=false for a missing key. Set replaces the whole value in a
// single atomic write.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
