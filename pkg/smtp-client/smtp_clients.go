package smtp_client

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"net/smtp"
	"strconv"
	"sync"
	"time"

	"github.com/knadh/smtppool"
)

// SmtpClients distributes outgoing mail round-robin over one connection pool
// per configured server.
type SmtpClients struct {
	mu             sync.Mutex
	servers        SmtpServerList
	connectionPool []serverPool
	counter        uint64
}

type serverPool struct {
	server SmtpServer
	pool   *smtppool.Pool
}

func NewSmtpClients(config SmtpServerList) (*SmtpClients, error) {
	if len(config.Servers) < 1 {
		return nil, errors.New("no smtp servers defined")
	}
	pools := initConnectionPool(config)
	if len(pools) < 1 {
		return nil, errors.New("no smtp server connection in the pool")
	}
	return &SmtpClients{
		servers:        config,
		connectionPool: pools,
	}, nil
}

// Close shuts down every connection pool.
func (sc *SmtpClients) Close() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for _, sp := range sc.connectionPool {
		sp.pool.Close()
	}
}

func initConnectionPool(serverList SmtpServerList) []serverPool {
	connectionPools := []serverPool{}
	for _, server := range serverList.Servers {
		pool, err := connectToPool(server)
		if err != nil {
			slog.Error("error setting up connection pool", slog.String("error", err.Error()), slog.String("server", server.Address()))
			continue
		}
		connectionPools = append(connectionPools, serverPool{server: server, pool: pool})
	}
	return connectionPools
}

func connectToPool(server SmtpServer) (*smtppool.Pool, error) {
	auth := smtp.PlainAuth(
		"",
		server.AuthData.Username,
		server.AuthData.Password,
		server.Host,
	)
	if server.AuthData.Username == "" && server.AuthData.Password == "" {
		auth = nil
	}

	tlsOpts := &tls.Config{
		InsecureSkipVerify: server.InsecureSkipVerify,
		ServerName:         server.Host,
	}
	port, err := strconv.Atoi(server.Port)
	if err != nil {
		return nil, err
	}

	return smtppool.New(smtppool.Opt{
		Host:            server.Host,
		Port:            port,
		MaxConns:        server.Connections,
		IdleTimeout:     time.Duration(server.SendTimeout) * time.Second,
		PoolWaitTimeout: time.Duration(server.SendTimeout) * time.Second,
		TLSConfig:       tlsOpts,
		Auth:            auth,
	})
}
