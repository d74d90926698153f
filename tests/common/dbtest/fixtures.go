//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, is_email_validated, is_active)
		VALUES ($1, $2, $3, $4, $4 <> 'user', true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

// CreateBeneficiary creates a beneficiary holding an unexpired 18 years old
// grant of amount.
func CreateBeneficiary(t *testing.T, db DBLike, email string, amount string) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "beneficiary")
	_, err := db.Exec(context.Background(), `UPDATE users
		SET first_name = 'Jeanne', last_name = 'Doux', date_of_birth = '2006-01-15', postal_code = '75011', department_code = '75'
		WHERE id = $1`, userID)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `INSERT INTO deposits (user_id, type, amount, expiration_date, source)
		VALUES ($1, 'GRANT_18', $2, $3, 'dms')`,
		userID, decimal.RequireFromString(amount).StringFixed(2), time.Now().AddDate(2, 0, 0))
	require.NoError(t, err)
	return userID
}

type OffererFixture struct {
	OffererID uuid.UUID
	VenueID   uuid.UUID
}

func CreateOfferer(t *testing.T, db DBLike, name string) OffererFixture {
	t.Helper()

	ctx := context.Background()
	f := OffererFixture{OffererID: uuid.New(), VenueID: uuid.New()}
	siren := strings.ReplaceAll(f.OffererID.String(), "-", "")[:9]

	_, err := db.Exec(ctx, "INSERT INTO offerers (id, name, siren) VALUES ($1, $2, $3)", f.OffererID, name, siren)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO venues (id, offerer_id, name, department_code) VALUES ($1, $2, $3, '75')",
		f.VenueID, f.OffererID, name+" - lieu principal")
	require.NoError(t, err)
	return f
}

type StockFixture struct {
	Price         string
	Quantity      *int
	IsDuo         bool
	IsEducational bool
	Subcategory   string

	OfferID uuid.UUID
	StockID uuid.UUID
}

// CreateStock creates an offer in the offerer's venue with one stock.
func CreateStock(t *testing.T, db DBLike, offerer OffererFixture, s StockFixture) StockFixture {
	t.Helper()

	ctx := context.Background()
	if s.Price == "" {
		s.Price = "10.00"
	}
	if s.Subcategory == "" {
		s.Subcategory = "SEANCE_CINE"
	}
	s.OfferID, s.StockID = uuid.New(), uuid.New()

	_, err := db.Exec(ctx, `INSERT INTO offers (id, venue_id, name, subcategory_id, is_duo, is_educational)
		VALUES ($1, $2, 'Offre de test', $3, $4, $5)`,
		s.OfferID, offerer.VenueID, s.Subcategory, s.IsDuo, s.IsEducational)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO stocks (id, offer_id, price, quantity) VALUES ($1, $2, $3, $4)",
		s.StockID, s.OfferID, s.Price, s.Quantity)
	require.NoError(t, err)
	return s
}

func SetFeature(t *testing.T, db DBLike, name string, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE features SET is_active = $2 WHERE name = $1", name, active)
	require.NoError(t, err)
}

// SeedReferenceData restores the rows the migrations insert.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO features (name, is_active, description) VALUES
		    ('PAUSE_JEUNE_SUBSCRIPTION', false, 'Suspend beneficiary subscriptions'),
		    ('ENABLE_DUPLICATE_USER_RULE_WITHOUT_BIRTHDATE', false, 'Flag users sharing a name with recent accounts as duplicates')
		ON CONFLICT (name) DO UPDATE SET is_active = false;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
