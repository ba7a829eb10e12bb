package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// testDatabase connects once per run and applies the embedded migrations.
// Tests are skipped when TEST_DATABASE_URL is not set.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr != nil {
			return
		}
		testDBErr = database.Migrate(context.Background(), testDB)
	})
	require.NoError(t, testDBErr, "failed to prepare test database")
	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"time_entries",
		"holidays",
		"users",
		"employees",
		"departments",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, db *database.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO employees (employee_number, name, email, job_title, start_date)
		VALUES ($1, $2, $3, 'Developer', '2024-01-01')
		RETURNING id
	`, "EMP-"+email, name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// identityContext builds a request context carrying verified claims the way
// jwtauth leaves them after token verification.
func identityContext(t *testing.T, userID, employeeID int64, role string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     userID,
		"email":       "worker@example.com",
		"role":        role,
		"type":        "access",
		"employee_id": employeeID,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}
