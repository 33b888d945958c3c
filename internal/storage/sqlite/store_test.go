package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hongminglow/finance-be/internal/storage"
	"github.com/hongminglow/finance-be/internal/storage/storagetest"
)

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &storagetest.StoreSuite{
		NewStore: func() (storage.Store, error) {
			return NewStore(context.Background(), ":memory:")
		},
	})
}
