package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSource appends the ctx's source file name to err so failures keep
// their provenance when they leave the logging context.
func WrapSource(ctx context.Context, err error) error {
	name, ok := sourceFrom(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("source: %s", name))
}
