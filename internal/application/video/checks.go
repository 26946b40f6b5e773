package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/reelstack/catalog/internal/domain/validation"
)

// checkAggregateExists verifies that every requested foreign id exists in its
// owning aggregate's store. The gateway is consulted even when the requested
// set is empty; an empty set trivially has no missing ids but the call itself
// is part of the contract. Missing ids are reported as one validation error
// in request order.
func checkAggregateExists[T ~string](
	ctx context.Context,
	label string,
	ids []T,
	existsByIDs func(context.Context, []T) ([]T, error),
) (*validation.Notification, error) {
	notification := validation.NewNotification()

	present, err := existsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("checking %s existence: %w", label, err)
	}

	presentSet := make(map[T]struct{}, len(present))
	for _, id := range present {
		presentSet[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := presentSet[id]; !ok {
			missing = append(missing, string(id))
		}
	}

	if len(missing) > 0 {
		notification.Append(validation.NewError(
			fmt.Sprintf("Some %s could not be found: %s", label, strings.Join(missing, ", ")),
		))
	}

	return notification, nil
}

func toIdentifiers[T ~string](values []string, from func(string) T) []T {
	ids := make([]T, 0, len(values))
	for _, value := range values {
		ids = append(ids, from(value))
	}
	return ids
}
