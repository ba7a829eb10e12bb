package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
)

func countRows(t *testing.T, ctx context.Context, db *database.DB, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.QueryRow(ctx, query, args...).Scan(&count))
	return count
}

func TestDeleteEmployeeCascades(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	employeeID := createTestEmployee(t, db, "Margaret Hamilton", "margaret@example.com")
	otherID := createTestEmployee(t, db, "Katherine Johnson", "katherine@example.com")

	for _, id := range []int64{employeeID, otherID} {
		_, err := db.Exec(ctx, `
			INSERT INTO holidays (employee_id, start_date, end_date, days)
			VALUES ($1, '2025-06-02', '2025-06-06', 5)
		`, id)
		require.NoError(t, err)

		_, err = db.Exec(ctx, `
			INSERT INTO time_entries (employee_id, entry_date, clock_in, clock_out)
			VALUES ($1, '2025-06-02', '09:00', '17:00')
		`, id)
		require.NoError(t, err)
	}

	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role, employee_id)
		VALUES ('margaret@example.com', 'x', 'employee', $1)
		RETURNING id
	`, employeeID).Scan(&userID)
	require.NoError(t, err)

	repo := postgresql.NewEmployeeRepository(db)
	require.NoError(t, repo.Delete(ctx, employeeID))

	// The employee's leave and time rows go with it; other employees keep theirs.
	assert.Zero(t, countRows(t, ctx, db, `SELECT COUNT(*) FROM holidays WHERE employee_id = $1`, employeeID))
	assert.Zero(t, countRows(t, ctx, db, `SELECT COUNT(*) FROM time_entries WHERE employee_id = $1`, employeeID))
	assert.Equal(t, int64(1), countRows(t, ctx, db, `SELECT COUNT(*) FROM holidays WHERE employee_id = $1`, otherID))
	assert.Equal(t, int64(1), countRows(t, ctx, db, `SELECT COUNT(*) FROM time_entries WHERE employee_id = $1`, otherID))

	// The linked user account survives with the link cleared.
	var linked *int64
	require.NoError(t, db.QueryRow(ctx, `SELECT employee_id FROM users WHERE id = $1`, userID).Scan(&linked))
	assert.Nil(t, linked)

	_, err = repo.GetByID(ctx, employeeID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
