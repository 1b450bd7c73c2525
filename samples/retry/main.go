package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cschleiden/go-cancel/cancellation"
	"github.com/cschleiden/go-cancel/retry"
)

func main() {
	// Give up after three seconds
	canceler := cancellation.NewCanceler()
	time.AfterFunc(3*time.Second, canceler.Cancel)

	c := cancellation.New(cancellation.WithFlags(canceler.Flag()))

	attempts := 0

	err := retry.Do(context.Background(), c, func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("attempt %d failed", attempts)
	}, retry.WithInitialInterval(200*time.Millisecond))

	fmt.Printf("gave up after %d attempts: %v\n", attempts, err)
}
