package service

import (
	"context"
	"errors"

	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

// KeyValueStore is the persistence contract the stores are built on. Get
// returns appErrors.ErrKeyNotFound when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

func isKeyNotFound(err error) bool {
	return errors.Is(err, appErrors.ErrKeyNotFound)
}

func invalidTime(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, timeofday.ErrInvalidTime) {
		return appErrors.WrapAs(appErrors.ErrInvalidTime, err, err.Error())
	}
	return err
}
