package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the durable implementation of Store on modernc sqlite.
//
// The embedded bid-snapshot list on an auction is derived from the bids
// table on read; the bids table is the single source of truth here.
type SQLiteStore struct {
	db *sql.DB
}

// migrations returns the schema statements, one per string.
func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id           TEXT PRIMARY KEY,
			user_name         TEXT NOT NULL,
			email             TEXT NOT NULL UNIQUE,
			password_hash     TEXT NOT NULL,
			phone             TEXT NOT NULL DEFAULT '',
			address           TEXT NOT NULL DEFAULT '',
			profile_image_id  TEXT NOT NULL DEFAULT '',
			profile_image_url TEXT NOT NULL DEFAULT '',
			bank_account_no   TEXT NOT NULL DEFAULT '',
			bank_account_name TEXT NOT NULL DEFAULT '',
			bank_name         TEXT NOT NULL DEFAULT '',
			google_pay_no     TEXT NOT NULL DEFAULT '',
			paypal_email      TEXT NOT NULL DEFAULT '',
			role              TEXT NOT NULL,
			unpaid_commission REAL NOT NULL DEFAULT 0,
			auction_won       INTEGER NOT NULL DEFAULT 0,
			money_spent       REAL NOT NULL DEFAULT 0,
			created_at        TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS auctions (
			auction_id            TEXT PRIMARY KEY,
			title                 TEXT NOT NULL,
			description           TEXT NOT NULL DEFAULT '',
			category              TEXT NOT NULL DEFAULT '',
			condition             TEXT NOT NULL DEFAULT '',
			starting_bid          REAL NOT NULL,
			current_bid           REAL NOT NULL DEFAULT 0,
			start_time            TEXT NOT NULL,
			end_time              TEXT NOT NULL,
			image_id              TEXT NOT NULL DEFAULT '',
			image_url             TEXT NOT NULL DEFAULT '',
			created_by            TEXT NOT NULL,
			highest_bidder        TEXT NOT NULL DEFAULT '',
			commission_calculated INTEGER NOT NULL DEFAULT 0,
			created_at            TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_auctions_owner ON auctions(created_by, end_time)`,
		`CREATE INDEX IF NOT EXISTS idx_auctions_unsettled ON auctions(commission_calculated, end_time)`,

		`CREATE TABLE IF NOT EXISTS bids (
			bid_id        TEXT PRIMARY KEY,
			auction_id    TEXT NOT NULL,
			bidder_id     TEXT NOT NULL,
			user_name     TEXT NOT NULL DEFAULT '',
			profile_image TEXT NOT NULL DEFAULT '',
			amount        REAL NOT NULL,
			created_at    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bids_auction ON bids(auction_id, amount)`,

		`CREATE TABLE IF NOT EXISTS payment_proofs (
			proof_id   TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			image_id   TEXT NOT NULL DEFAULT '',
			image_url  TEXT NOT NULL DEFAULT '',
			amount     REAL NOT NULL,
			comment    TEXT NOT NULL DEFAULT '',
			status     TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_proofs_status ON payment_proofs(status)`,

		`CREATE TABLE IF NOT EXISTS commission_ledger (
			record_id  TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			amount     REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// Single writer; avoids SQLITE_BUSY under concurrent request handlers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return nil, fmt.Errorf("sqlite: enable WAL: %w", err)
	}
	for _, stmt := range migrations() {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("sqlite: migrate: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func decodeTime(v string) time.Time {
	t, _ := time.Parse(timeLayout, v)
	return t
}

// ---- Users ----

func (s *SQLiteStore) CreateUser(u model.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (user_id, user_name, email, password_hash, phone, address,
			profile_image_id, profile_image_url, bank_account_no, bank_account_name,
			bank_name, google_pay_no, paypal_email, role, unpaid_commission,
			auction_won, money_spent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.UserID, u.UserName, u.Email, u.PasswordHash, u.Phone, u.Address,
		u.ProfileImage.ID, u.ProfileImage.URL,
		u.PaymentMethods.BankTransfer.AccountNumber, u.PaymentMethods.BankTransfer.AccountName,
		u.PaymentMethods.BankTransfer.BankName, u.PaymentMethods.GooglePayNo,
		u.PaymentMethods.PaypalEmail, string(u.Role), u.UnpaidCommission,
		u.AuctionWon, u.MoneySpent, encodeTime(u.CreatedAt))
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.Email, auctionerrors.ErrEmailTaken)
	}
	return nil
}

const userColumns = `user_id, user_name, email, password_hash, phone, address,
	profile_image_id, profile_image_url, bank_account_no, bank_account_name,
	bank_name, google_pay_no, paypal_email, role, unpaid_commission,
	auction_won, money_spent, created_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	var role, createdAt string
	err := row.Scan(&u.UserID, &u.UserName, &u.Email, &u.PasswordHash, &u.Phone, &u.Address,
		&u.ProfileImage.ID, &u.ProfileImage.URL,
		&u.PaymentMethods.BankTransfer.AccountNumber, &u.PaymentMethods.BankTransfer.AccountName,
		&u.PaymentMethods.BankTransfer.BankName, &u.PaymentMethods.GooglePayNo,
		&u.PaymentMethods.PaypalEmail, &role, &u.UnpaidCommission,
		&u.AuctionWon, &u.MoneySpent, &createdAt)
	if err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	u.CreatedAt = decodeTime(createdAt)
	return u, nil
}

func (s *SQLiteStore) GetUser(id string) (model.User, error) {
	u, err := scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE user_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *SQLiteStore) GetUserByEmail(email string) (model.User, error) {
	u, err := scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, err)
	}
	return u, nil
}

func (s *SQLiteStore) UpdateUserPassword(id, passwordHash string) error {
	res, err := s.db.Exec(`UPDATE users SET password_hash = ? WHERE user_id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update password for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	return nil
}

func (s *SQLiteStore) AdjustBalances(id string, d BalanceDelta) (model.User, error) {
	res, err := s.db.Exec(`
		UPDATE users SET
			money_spent       = money_spent + ?,
			auction_won       = auction_won + ?,
			unpaid_commission = unpaid_commission + ?
		WHERE user_id = ?`,
		d.MoneySpent, d.AuctionWon, d.UnpaidCommission, id)
	if err != nil {
		return model.User{}, fmt.Errorf("adjust balances for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.User{}, fmt.Errorf("adjust balances for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	return s.GetUser(id)
}

func (s *SQLiteStore) ZeroUnpaidCommission(id string) (model.User, error) {
	res, err := s.db.Exec(`UPDATE users SET unpaid_commission = 0 WHERE user_id = ?`, id)
	if err != nil {
		return model.User{}, fmt.Errorf("zero unpaid commission for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.User{}, fmt.Errorf("zero unpaid commission for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	return s.GetUser(id)
}

func (s *SQLiteStore) SettleCommission(id string, amount float64) (model.User, error) {
	// Decrement with clamp in one statement so concurrent settlements
	// cannot drive the balance negative.
	res, err := s.db.Exec(`
		UPDATE users SET unpaid_commission = MAX(0, unpaid_commission - ?)
		WHERE user_id = ?`, amount, id)
	if err != nil {
		return model.User{}, fmt.Errorf("settle commission for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.User{}, fmt.Errorf("settle commission for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	return s.GetUser(id)
}

func (s *SQLiteStore) ListBigSpenders() ([]model.User, error) {
	rows, err := s.db.Query(`SELECT ` + userColumns + ` FROM users WHERE money_spent > 0 ORDER BY money_spent DESC`)
	if err != nil {
		return nil, fmt.Errorf("list big spenders: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list big spenders: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ---- Auctions ----

const auctionColumns = `auction_id, title, description, category, condition,
	starting_bid, current_bid, start_time, end_time, image_id, image_url,
	created_by, highest_bidder, commission_calculated, created_at`

func scanAuction(row interface{ Scan(...any) error }) (model.Auction, error) {
	var a model.Auction
	var start, end, createdAt string
	var calculated int
	err := row.Scan(&a.AuctionID, &a.Title, &a.Description, &a.Category, &a.Condition,
		&a.StartingBid, &a.CurrentBid, &start, &end, &a.Image.ID, &a.Image.URL,
		&a.CreatedBy, &a.HighestBidder, &calculated, &createdAt)
	if err != nil {
		return model.Auction{}, err
	}
	a.StartTime = decodeTime(start)
	a.EndTime = decodeTime(end)
	a.CreatedAt = decodeTime(createdAt)
	a.CommissionCalculated = calculated == 1
	return a, nil
}

type queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// loadSnapshots derives the embedded snapshot list from the bids table.
func loadSnapshots(q queryer, auctionID string) ([]model.BidSnapshot, error) {
	rows, err := q.Query(`
		SELECT bidder_id, user_name, profile_image, amount
		FROM bids WHERE auction_id = ? ORDER BY created_at, amount`, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []model.BidSnapshot
	for rows.Next() {
		var snap model.BidSnapshot
		if err := rows.Scan(&snap.BidderID, &snap.UserName, &snap.ProfileImage, &snap.Amount); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (s *SQLiteStore) CreateAuction(a model.Auction) error {
	calculated := 0
	if a.CommissionCalculated {
		calculated = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO auctions (auction_id, title, description, category, condition,
			starting_bid, current_bid, start_time, end_time, image_id, image_url,
			created_by, highest_bidder, commission_calculated, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AuctionID, a.Title, a.Description, a.Category, a.Condition,
		a.StartingBid, a.CurrentBid, encodeTime(a.StartTime), encodeTime(a.EndTime),
		a.Image.ID, a.Image.URL, a.CreatedBy, a.HighestBidder, calculated,
		encodeTime(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("create auction %s: %w", a.AuctionID, err)
	}
	return nil
}

func (s *SQLiteStore) GetAuction(id string) (model.Auction, error) {
	a, err := scanAuction(s.db.QueryRow(`SELECT `+auctionColumns+` FROM auctions WHERE auction_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	if a.Bids, err = loadSnapshots(s.db, id); err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	return a, nil
}

func (s *SQLiteStore) listAuctions(where string, args ...any) ([]model.Auction, error) {
	rows, err := s.db.Query(`SELECT `+auctionColumns+` FROM auctions `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	auctions := make([]model.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range auctions {
		if auctions[i].Bids, err = loadSnapshots(s.db, auctions[i].AuctionID); err != nil {
			return nil, err
		}
	}
	return auctions, nil
}

func (s *SQLiteStore) ListAuctions() ([]model.Auction, error) {
	auctions, err := s.listAuctions(`ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

func (s *SQLiteStore) ListAuctionsByOwner(ownerID string) ([]model.Auction, error) {
	auctions, err := s.listAuctions(`WHERE created_by = ? ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list auctions for %s: %w", ownerID, err)
	}
	return auctions, nil
}

func (s *SQLiteStore) ActiveAuctionExists(ownerID string, now time.Time) (bool, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(1) FROM auctions WHERE created_by = ? AND end_time > ?`,
		ownerID, encodeTime(now)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("active auction check for %s: %w", ownerID, err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) ListExpiredUnsettled(now time.Time) ([]model.Auction, error) {
	auctions, err := s.listAuctions(
		`WHERE end_time < ? AND commission_calculated = 0 ORDER BY end_time`, encodeTime(now))
	if err != nil {
		return nil, fmt.Errorf("list expired unsettled: %w", err)
	}
	return auctions, nil
}

func (s *SQLiteStore) DeleteAuction(id string) error {
	res, err := s.db.Exec(`DELETE FROM auctions WHERE auction_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete auction %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	_, err = s.db.Exec(`DELETE FROM bids WHERE auction_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete auction %s bids: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) RecordBid(bid model.Bid, now time.Time) (model.Auction, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, err)
	}
	defer tx.Rollback()

	var start, end string
	var startingBid, currentBid float64
	err = tx.QueryRow(`
		SELECT start_time, end_time, starting_bid, current_bid
		FROM auctions WHERE auction_id = ?`, bid.AuctionID).
		Scan(&start, &end, &startingBid, &currentBid)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, err)
	}
	if now.Before(decodeTime(start)) {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotStarted)
	}
	if !now.Before(decodeTime(end)) {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, auctionerrors.ErrAuctionClosed)
	}
	if currentBid == 0 && bid.Amount < startingBid {
		return model.Auction{}, fmt.Errorf("record bid on %s: below starting bid %.2f: %w",
			bid.AuctionID, startingBid, auctionerrors.ErrBidTooLow)
	}

	// Conditional set: commits only if the amount still exceeds whatever
	// the current bid is at write time.
	res, err := tx.Exec(`
		UPDATE auctions SET current_bid = ?
		WHERE auction_id = ? AND current_bid < ?`,
		bid.Amount, bid.AuctionID, bid.Amount)
	if err != nil {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Auction{}, fmt.Errorf("record bid on %s: current bid is %.2f: %w",
			bid.AuctionID, currentBid, auctionerrors.ErrBidTooLow)
	}

	_, err = tx.Exec(`
		INSERT INTO bids (bid_id, auction_id, bidder_id, user_name, profile_image, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		bid.BidID, bid.AuctionID, bid.BidderID, bid.UserName, bid.ProfileImage,
		bid.Amount, encodeTime(bid.CreatedAt))
	if err != nil {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, err)
	}
	return s.GetAuction(bid.AuctionID)
}

func (s *SQLiteStore) ClaimCommission(auctionID string) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE auctions SET commission_calculated = 1
		WHERE auction_id = ? AND commission_calculated = 0`, auctionID)
	if err != nil {
		return false, fmt.Errorf("claim commission for %s: %w", auctionID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// Either already claimed or the auction is gone; distinguish.
		var exists int
		if err := s.db.QueryRow(`SELECT COUNT(1) FROM auctions WHERE auction_id = ?`, auctionID).Scan(&exists); err != nil {
			return false, fmt.Errorf("claim commission for %s: %w", auctionID, err)
		}
		if exists == 0 {
			return false, fmt.Errorf("claim commission for %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) SetHighestBidder(auctionID, bidderID string) error {
	res, err := s.db.Exec(`UPDATE auctions SET highest_bidder = ? WHERE auction_id = ?`, bidderID, auctionID)
	if err != nil {
		return fmt.Errorf("set highest bidder for %s: %w", auctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set highest bidder for %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

func (s *SQLiteStore) ResetAuction(id string, start, end time.Time) (model.Auction, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return model.Auction{}, fmt.Errorf("reset auction %s: %w", id, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE auctions SET
			start_time = ?, end_time = ?, current_bid = 0,
			highest_bidder = '', commission_calculated = 0
		WHERE auction_id = ?`,
		encodeTime(start), encodeTime(end), id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("reset auction %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Auction{}, fmt.Errorf("reset auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if _, err := tx.Exec(`DELETE FROM bids WHERE auction_id = ?`, id); err != nil {
		return model.Auction{}, fmt.Errorf("reset auction %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return model.Auction{}, fmt.Errorf("reset auction %s: %w", id, err)
	}
	return s.GetAuction(id)
}

// ---- Bids ----

func (s *SQLiteStore) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	rows, err := s.db.Query(`
		SELECT bid_id, auction_id, bidder_id, user_name, profile_image, amount, created_at
		FROM bids WHERE auction_id = ? ORDER BY created_at, amount`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get bids for %s: %w", auctionID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		var createdAt string
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.UserName,
			&b.ProfileImage, &b.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("get bids for %s: %w", auctionID, err)
		}
		b.CreatedAt = decodeTime(createdAt)
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for %s: %w", auctionID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

func (s *SQLiteStore) FindBidByAmount(auctionID string, amount float64) (model.Bid, error) {
	var b model.Bid
	var createdAt string
	err := s.db.QueryRow(`
		SELECT bid_id, auction_id, bidder_id, user_name, profile_image, amount, created_at
		FROM bids WHERE auction_id = ? AND amount = ? LIMIT 1`, auctionID, amount).
		Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.UserName, &b.ProfileImage, &b.Amount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("find bid of %.2f on %s: %w", amount, auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("find bid of %.2f on %s: %w", amount, auctionID, err)
	}
	b.CreatedAt = decodeTime(createdAt)
	return b, nil
}

// ---- Payment proofs ----

func (s *SQLiteStore) CreateProof(p model.PaymentProof) error {
	_, err := s.db.Exec(`
		INSERT INTO payment_proofs (proof_id, user_id, image_id, image_url, amount, comment, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProofID, p.UserID, p.Proof.ID, p.Proof.URL, p.Amount, p.Comment,
		string(p.Status), encodeTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("create proof %s: %w", p.ProofID, err)
	}
	return nil
}

func scanProof(row interface{ Scan(...any) error }) (model.PaymentProof, error) {
	var p model.PaymentProof
	var status, createdAt string
	err := row.Scan(&p.ProofID, &p.UserID, &p.Proof.ID, &p.Proof.URL, &p.Amount,
		&p.Comment, &status, &createdAt)
	if err != nil {
		return model.PaymentProof{}, err
	}
	p.Status = model.ProofStatus(status)
	p.CreatedAt = decodeTime(createdAt)
	return p, nil
}

const proofColumns = `proof_id, user_id, image_id, image_url, amount, comment, status, created_at`

func (s *SQLiteStore) GetProof(id string) (model.PaymentProof, error) {
	p, err := scanProof(s.db.QueryRow(`SELECT `+proofColumns+` FROM payment_proofs WHERE proof_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.PaymentProof{}, fmt.Errorf("get proof %s: %w", id, auctionerrors.ErrProofNotFound)
	}
	if err != nil {
		return model.PaymentProof{}, fmt.Errorf("get proof %s: %w", id, err)
	}
	return p, nil
}

func (s *SQLiteStore) listProofs(where string, args ...any) ([]model.PaymentProof, error) {
	rows, err := s.db.Query(`SELECT `+proofColumns+` FROM payment_proofs `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proofs := make([]model.PaymentProof, 0)
	for rows.Next() {
		p, err := scanProof(rows)
		if err != nil {
			return nil, err
		}
		proofs = append(proofs, p)
	}
	return proofs, rows.Err()
}

func (s *SQLiteStore) ListProofs() ([]model.PaymentProof, error) {
	proofs, err := s.listProofs(`ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	return proofs, nil
}

func (s *SQLiteStore) ListProofsByStatus(status model.ProofStatus) ([]model.PaymentProof, error) {
	proofs, err := s.listProofs(`WHERE status = ? ORDER BY created_at`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list proofs with status %s: %w", status, err)
	}
	return proofs, nil
}

func (s *SQLiteStore) UpdateProof(id string, status model.ProofStatus, amount float64) (model.PaymentProof, error) {
	res, err := s.db.Exec(`UPDATE payment_proofs SET status = ?, amount = ? WHERE proof_id = ?`,
		string(status), amount, id)
	if err != nil {
		return model.PaymentProof{}, fmt.Errorf("update proof %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.PaymentProof{}, fmt.Errorf("update proof %s: %w", id, auctionerrors.ErrProofNotFound)
	}
	return s.GetProof(id)
}

func (s *SQLiteStore) DeleteProof(id string) error {
	res, err := s.db.Exec(`DELETE FROM payment_proofs WHERE proof_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete proof %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete proof %s: %w", id, auctionerrors.ErrProofNotFound)
	}
	return nil
}

// ---- Commission ledger ----

func (s *SQLiteStore) AppendCommissionRecord(r model.CommissionRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO commission_ledger (record_id, user_id, amount, created_at)
		VALUES (?, ?, ?, ?)`,
		r.RecordID, r.UserID, r.Amount, encodeTime(r.CreatedAt))
	if err != nil {
		return fmt.Errorf("append commission record %s: %w", r.RecordID, err)
	}
	return nil
}

func (s *SQLiteStore) ListCommissionRecords() ([]model.CommissionRecord, error) {
	rows, err := s.db.Query(`SELECT record_id, user_id, amount, created_at FROM commission_ledger ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list commission records: %w", err)
	}
	defer rows.Close()

	records := make([]model.CommissionRecord, 0)
	for rows.Next() {
		var r model.CommissionRecord
		var createdAt string
		if err := rows.Scan(&r.RecordID, &r.UserID, &r.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("list commission records: %w", err)
		}
		r.CreatedAt = decodeTime(createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
