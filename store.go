package cointrade

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// timeLayout is the format transaction times are persisted in. The layout
// carries no zone, so stored times are always UTC.
const timeLayout = "2006-01-02 15:04:05"

// Store is the durable wallet store: the append-only transaction log plus
// one mutable balance cell per user. It performs no business validation;
// that is the trading engine's job.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at dbPath and ensures
// the schema exists.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, storageErr("open", fmt.Errorf("db path is required"))
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, storageErr("open", fmt.Errorf("create db dir: %w", err))
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, storageErr("open", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=3000;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, storageErr("open", fmt.Errorf("set pragma %s: %w", p, err))
		}
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS wallet (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    currency TEXT NOT NULL DEFAULT 'USD',
    balance TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL REFERENCES wallet(username),
    type TEXT NOT NULL,
    symbol TEXT NOT NULL,
    amount TEXT NOT NULL,
    price TEXT NOT NULL,
    value TEXT NOT NULL,
    time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_username ON transactions(username, id);
`
	if _, err := db.Exec(schema); err != nil {
		return storageErr("init schema", err)
	}
	return nil
}

// walletCurrency returns the fiat currency of the user's wallet, or
// ErrUnknownWallet when the row was never provisioned.
func (s *Store) walletCurrency(ctx context.Context, user string) (string, error) {
	var currency string
	err := s.db.QueryRowContext(ctx,
		`SELECT currency FROM wallet WHERE username = ?`, user).Scan(&currency)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %q", ErrUnknownWallet, user)
	}
	if err != nil {
		return "", storageErr("read wallet", err)
	}
	return currency, nil
}

// Balance reads the user's cash balance cell.
func (s *Store) Balance(ctx context.Context, user string) (Money, error) {
	var raw, currency string
	err := s.db.QueryRowContext(ctx,
		`SELECT balance, currency FROM wallet WHERE username = ?`, user).Scan(&raw, &currency)
	if err == sql.ErrNoRows {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownWallet, user)
	}
	if err != nil {
		return Money{}, storageErr("read balance", err)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, storageErr("read balance", fmt.Errorf("corrupt balance %q: %w", raw, err))
	}
	return M(value, currency), nil
}

// SetBalance overwrites the user's cash balance cell. The wallet row must
// have been provisioned first.
func (s *Store) SetBalance(ctx context.Context, user string, balance Money) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE wallet SET balance = ? WHERE username = ?`, balance.Decimal().String(), user)
	if err != nil {
		return storageErr("set balance", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return storageErr("set balance", fmt.Errorf("%w: %q", ErrUnknownWallet, user))
	}
	return nil
}

// AppendTransaction persists tx durably at the end of the user's ledger.
// It is a pure durability primitive: no business rule is checked here.
// Times are stored in UTC; reads return the same instant.
func (s *Store) AppendTransaction(ctx context.Context, tx Transaction) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO transactions (username, type, symbol, amount, price, value, time)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, tx.User, string(tx.Side), tx.Symbol,
		tx.Amount.String(), tx.Price.Decimal().String(), tx.Value.Decimal().String(),
		tx.Time.UTC().Format(timeLayout))
	if err != nil {
		return storageErr("append transaction", err)
	}
	return nil
}

// Transactions reads the user's full ledger, oldest first. Repeated calls
// re-read the whole history; there is no cursor state.
func (s *Store) Transactions(ctx context.Context, user string) (Ledger, error) {
	currency, err := s.walletCurrency(ctx, user)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT type, symbol, amount, price, value, time
FROM transactions WHERE username = ? ORDER BY id
`, user)
	if err != nil {
		return nil, storageErr("list transactions", err)
	}
	defer rows.Close()

	var ledger Ledger
	for rows.Next() {
		tx, err := scanTransaction(rows, user, currency)
		if err != nil {
			return nil, err
		}
		ledger = append(ledger, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list transactions", err)
	}
	return ledger, nil
}

func scanTransaction(rows *sql.Rows, user, currency string) (Transaction, error) {
	var side, symbol, amount, price, value, at string
	if err := rows.Scan(&side, &symbol, &amount, &price, &value, &at); err != nil {
		return Transaction{}, storageErr("list transactions", err)
	}
	tx := Transaction{User: user, Symbol: symbol}

	var err error
	if tx.Side, err = ParseSide(side); err != nil {
		return Transaction{}, storageErr("list transactions", fmt.Errorf("corrupt side %q: %w", side, err))
	}
	if tx.Amount, err = ParseQuantity(amount); err != nil {
		return Transaction{}, storageErr("list transactions", fmt.Errorf("corrupt amount %q: %w", amount, err))
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return Transaction{}, storageErr("list transactions", fmt.Errorf("corrupt price %q: %w", price, err))
	}
	tx.Price = M(p, currency)
	v, err := decimal.NewFromString(value)
	if err != nil {
		return Transaction{}, storageErr("list transactions", fmt.Errorf("corrupt value %q: %w", value, err))
	}
	tx.Value = M(v, currency)
	if tx.Time, err = time.Parse(timeLayout, at); err != nil {
		return Transaction{}, storageErr("list transactions", fmt.Errorf("corrupt time %q: %w", at, err))
	}
	return tx, nil
}

// ExecuteTrade commits the balance update and the ledger append as one
// storage transaction. Either both become visible or neither does, so a
// crash can never leave the balance inconsistent with the ledger.
func (s *Store) ExecuteTrade(ctx context.Context, tx Transaction, newBalance Money) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("execute trade", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		`UPDATE wallet SET balance = ? WHERE username = ?`,
		newBalance.Decimal().String(), tx.User)
	if err != nil {
		return storageErr("execute trade", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return storageErr("execute trade", fmt.Errorf("%w: %q", ErrUnknownWallet, tx.User))
	}

	if _, err := dbTx.ExecContext(ctx, `
INSERT INTO transactions (username, type, symbol, amount, price, value, time)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, tx.User, string(tx.Side), tx.Symbol,
		tx.Amount.String(), tx.Price.Decimal().String(), tx.Value.Decimal().String(),
		tx.Time.UTC().Format(timeLayout)); err != nil {
		return storageErr("execute trade", err)
	}

	if err := dbTx.Commit(); err != nil {
		return storageErr("execute trade", err)
	}
	return nil
}
