package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"

	"github.com/hongminglow/finance-be/internal/storage"
	"github.com/hongminglow/finance-be/internal/storage/storagetest"
)

// TestPostgresStore runs the shared store contract against a live database.
func TestPostgresStore(t *testing.T) {
	if os.Getenv("RUN_PG_INTEGRATION") != "true" {
		t.Skip("set RUN_PG_INTEGRATION=true to run this integration test")
	}

	for _, path := range []string{".env", "../.env", "../../.env", "../../../.env"} {
		_ = godotenv.Overload(path)
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	suite.Run(t, &storagetest.StoreSuite{
		NewStore: func() (storage.Store, error) {
			return NewStore(context.Background(), dbURL)
		},
	})
}
