package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	var state any = map[string]any{}
	if len(args) > 0 {
		parsed, err := parseJSONValue(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse initial state: %w", err)
		}
		state = parsed
	}

	objectID := uuid.NewString()

	c.coordinator.RecordChange(objectID, nil, state)

	c.io.Printf("Created object %s\n", objectID)
	c.io.Println("Run 'deltasync sync' to push it to the server.")

	return nil
}
