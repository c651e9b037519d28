package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/goserg/volunteerhub/internal/config"
)

const (
	OpportunityCreated   = "opportunity.created"
	OpportunityUpdated   = "opportunity.updated"
	OpportunityDeleted   = "opportunity.deleted"
	ApplicationCreated   = "application.created"
	ApplicationUpdated   = "application.updated"
	ApplicationWithdrawn = "application.withdrawn"
)

type Event struct {
	Type     string    `json:"type"`
	EntityID uuid.UUID `json:"entityId"`
	ActorID  uuid.UUID `json:"actorId"`
	At       time.Time `json:"at"`
	Data     any       `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close()                               {}

type NATS struct {
	nc     *nats.Conn
	ns     *server.Server
	prefix string
	log    *logrus.Entry
}

var (
	_ Publisher = Nop{}
	_ Publisher = (*NATS)(nil)
)

// New returns Nop when events are disabled.
func New(l *logrus.Logger, cfg config.Events) (Publisher, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	log := l.WithField("from", "events")

	var ns *server.Server
	url := cfg.URL
	if cfg.Embedded {
		var err error
		ns, err = StartEmbedded(cfg.EmbeddedPort)
		if err != nil {
			return nil, err
		}
		url = ns.ClientURL()
		log.WithField("url", url).Info("embedded nats started")
	}

	nc, err := nats.Connect(url,
		nats.Name("volunteerhub"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("nats reconnected")
		}),
	)
	if err != nil {
		if ns != nil {
			ns.Shutdown()
		}
		return nil, fmt.Errorf("connect to nats %s: %w", url, err)
	}
	log.WithField("url", url).Info("events connected")
	return &NATS{
		nc:     nc,
		ns:     ns,
		prefix: cfg.SubjectPrefix,
		log:    log,
	}, nil
}

// StartEmbedded runs an in-process nats server. Port -1 picks a random port.
func StartEmbedded(port int) (*server.Server, error) {
	ns, err := server.NewServer(&server.Options{
		Host:   "127.0.0.1",
		Port:   port,
		NoLog:  true,
		NoSigs: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create nats server: %w", err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		ns.Shutdown()
		return nil, fmt.Errorf("nats server not ready for connections")
	}
	return ns, nil
}

func (p *NATS) Subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

func (p *NATS) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	subject := p.Subject(e.Type)
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.log.WithField("subject", subject).Trace("event published")
	return nil
}

func (p *NATS) Close() {
	if err := p.nc.Drain(); err != nil {
		p.log.WithError(err).Warn("nats drain")
	}
	if p.ns != nil {
		p.ns.Shutdown()
	}
}
