package smtp_client

import (
	"errors"
	"log/slog"
	"net/textproto"

	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"github.com/knadh/smtppool"
)

// SendMail sends a plain-text message through the next pool in turn. A
// failing pool is replaced by a fresh connection for later calls.
func (sc *SmtpClients) SendMail(
	to []string,
	subject string,
	textContent string,
	overrides *messagingTypes.HeaderOverrides,
) error {
	sc.mu.Lock()
	sc.counter += 1
	if len(sc.connectionPool) < 1 {
		sc.connectionPool = initConnectionPool(sc.servers)
		if len(sc.connectionPool) < 1 {
			sc.mu.Unlock()
			return errors.New("no servers defined")
		}
	}
	index := int(sc.counter % uint64(len(sc.connectionPool)))
	selected := sc.connectionPool[index]
	sc.mu.Unlock()

	e := smtppool.Email{
		To:      to,
		Subject: subject,
		Text:    []byte(textContent),
		Headers: textproto.MIMEHeader{},
	}
	e.From, e.Sender, e.ReplyTo = sc.senderHeaders(overrides)

	err := selected.pool.Send(e)
	if err != nil {
		slog.Error("error when trying to send email", slog.String("error", err.Error()))

		server := selected.server
		pool, errReconnect := connectToPool(server)
		if errReconnect != nil {
			slog.Error("cannot reconnect pool", slog.String("error", errReconnect.Error()), slog.String("server", server.Host))
		} else {
			slog.Info("reconnected to pool", slog.String("server", server.Host))
			sc.mu.Lock()
			sc.connectionPool[index] = serverPool{server: server, pool: pool}
			sc.mu.Unlock()
			selected.pool.Close()
		}
	}
	return err
}

func (sc *SmtpClients) senderHeaders(overrides *messagingTypes.HeaderOverrides) (from string, sender string, replyTo []string) {
	from = sc.servers.From
	sender = sc.servers.Sender
	replyTo = sc.servers.ReplyTo

	if overrides == nil {
		return
	}
	if overrides.From != "" {
		from = overrides.From
	}
	if overrides.Sender != "" {
		sender = overrides.Sender
	}
	if overrides.NoReplyTo {
		replyTo = []string{}
	} else if len(overrides.ReplyTo) > 0 {
		replyTo = overrides.ReplyTo
	}
	return
}
