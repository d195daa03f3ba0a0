package db

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"github.com/utpgestion/academico/internal/config"
	"github.com/utpgestion/academico/internal/pkg/helpers"
)

// CassandraDB wraps the professor store session.
type CassandraDB struct {
	Session *gocql.Session
}

// NewCassandraDB connects to the professor store.
func NewCassandraDB(cfg *config.Config) (*CassandraDB, error) {
	cluster := gocql.NewCluster(cfg.Cassandra.Hosts...)
	cluster.Keyspace = cfg.Cassandra.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = helpers.ParseDuration(cfg.Cassandra.Timeout, 5*time.Second)
	cluster.ConnectTimeout = cluster.Timeout

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create cassandra session: %w", err)
	}

	return &CassandraDB{Session: session}, nil
}

// Close closes the session
func (c *CassandraDB) Close() {
	if c.Session != nil {
		c.Session.Close()
	}
}
