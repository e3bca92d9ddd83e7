package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // register database/sql driver

	"github.com/arsurgical/hub-backend/db/sqldb"
)

// rowIDColumn is sqlite's implicit row identifier; every rowid table has
// it regardless of the declared primary key, which is what makes
// RETURNING emulation work for TEXT-keyed tables.
const rowIDColumn = "rowid"

// Client is the embedded engine for local development: one database file,
// one connection. Statements are translated from the canonical `$N`
// dialect to `?` placeholders, and RETURNING clauses are stripped and
// emulated with a follow-up read.
type Client struct {
	Conf *sqldb.Conf

	db  *sql.DB
	dsn string
}

// Ensure sqlite.Client implements sqldb.Client interface
var _ sqldb.Client = (*Client)(nil)

func Register() {
	sqldb.RegisterFactory("sqlite", func(conf *sqldb.Conf) (sqldb.Client, error) {
		return &Client{Conf: conf}, nil
	})
}

func (c *Client) Init() error {
	var err error
	if c.Conf.DSN != "" {
		c.dsn = c.Conf.DSN
	} else {
		c.dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", c.Conf.Path)
	}
	if c.db, err = sql.Open("sqlite", c.dsn); err != nil {
		return err
	}
	// Single shared handle: all statements execute in submission order.
	// This FIFO serialization is what makes session-scoped transactions
	// meaningful on this engine.
	c.db.SetMaxOpenConns(1)
	c.db.SetMaxIdleConns(1)
	c.db.SetConnMaxLifetime(0)
	if err = c.db.Ping(); err != nil {
		return err
	}
	log.Println("[INFO] sqlite client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	log.Println("[INFO] closing sqlite client")
	return c.db.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) GetConf() *sqldb.Conf {
	return c.Conf
}

func (c *Client) GetDSN() string {
	return c.dsn
}

func (c *Client) Query(ctx context.Context, stmt string, args ...any) (*sqldb.Result, error) {
	return sqldb.ExecTranslated(ctx, c.db, stmt, args, rowIDColumn)
}

func (c *Client) BeginTx(ctx context.Context) (sqldb.Tx, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}
