// Package firestore contains the concrete implementation of the persistence layer on Cloud Firestore.
package firestore

import (
	"context"

	"manna/internal/domain/constants"
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/errors"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const countAlias = "total"

// store is embedded by every repository. client is nil when Firebase is not configured.
type store struct {
	client *firestore.Client
}

func (s store) ready() error {
	if s.client == nil {
		return repository.ErrStoreUnavailable
	}

	return nil
}

func (s store) users() *firestore.CollectionRef {
	return s.client.Collection(constants.CollectionUsers)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func dbError(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// count runs an aggregation count over q.
func count(ctx context.Context, q firestore.Query, details string) (int64, error) {
	result, err := q.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, dbError(err, details)
	}

	value, ok := result[countAlias].(*firestorepb.Value)
	if !ok {
		return 0, dbError(errors.Errorf("unexpected count result %T", result[countAlias]), details)
	}

	return value.GetIntegerValue(), nil
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
