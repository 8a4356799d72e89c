package notify

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
)

// Notifier builds the observer that tells one user about an available item.
type Notifier interface {
	ObserverFor(user model.User) Observer
}

// MailNotifier hands messages to the mailer through a Kafka topic.
type MailNotifier struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	topic    string
	log      *zap.Logger
}

func NewMailNotifier(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker, topic string, log *zap.Logger) *MailNotifier {
	return &MailNotifier{
		producer: producer,
		cb:       cb,
		topic:    topic,
		log:      log.Named("mail"),
	}
}

func (n *MailNotifier) ObserverFor(user model.User) Observer {
	return ObserverFunc(func(_ context.Context, identifier string) error {
		return n.enqueue(model.ItemAvailableMessage{
			Identifier: identifier,
			Username:   user.Username,
			Email:      user.Email,
		})
	})
}

func (n *MailNotifier) enqueue(m model.ItemAvailableMessage) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(m.Identifier),
		Value: sarama.StringEncoder(data),
	}
	err = n.cb.Call(func() error {
		_, _, err := n.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "enqueue mail for %s", m.Username)
	}
	n.log.Debug("mail enqueued", zap.String("username", m.Username), zap.String("identifier", m.Identifier))
	return nil
}

// LogNotifier only logs; used when no broker is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("mail")}
}

func (n *LogNotifier) ObserverFor(user model.User) Observer {
	return ObserverFunc(func(_ context.Context, identifier string) error {
		n.log.Info("item available",
			zap.String("identifier", identifier),
			zap.String("username", user.Username),
			zap.String("email", user.Email))
		return nil
	})
}
