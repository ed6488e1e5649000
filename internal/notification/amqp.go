package notification

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"account-api/pkg/config"
)

type EmailMessage struct {
	Recipient       string            `json:"recipient"`
	TemplateKey     string            `json:"templateKey"`
	TemplateContext map[string]string `json:"templateContext"`
}

type amqpDispatcher struct {
	url       string
	queueName string
	log       *zap.SugaredLogger
}

func NewAmqpDispatcher(amqpConfig config.AmqpConfig, log *zap.SugaredLogger) Dispatcher {
	return &amqpDispatcher{
		url:       amqpConfig.Url,
		queueName: amqpConfig.EmailQueue,
		log:       log,
	}
}

func (d *amqpDispatcher) SendEmail(
	ctx context.Context,
	recipient, templateKey string,
	templateContext map[string]string,
) error {
	conn, err := amqp.Dial(d.url)
	if err != nil {
		d.log.Warnw("rabbitmq dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	channel, err := conn.Channel()
	if err != nil {
		d.log.Warnw("rabbitmq channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = channel.Close() }()

	// Durable so queued emails survive broker restarts. Declare is idempotent.
	_, err = channel.QueueDeclare(d.queueName, true, false, false, false, nil)
	if err != nil {
		d.log.Warnw("rabbitmq queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(&EmailMessage{
		Recipient:       recipient,
		TemplateKey:     templateKey,
		TemplateContext: templateContext,
	})
	if err != nil {
		return err
	}

	err = channel.PublishWithContext(ctx,
		"",
		d.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		d.log.Warnw("rabbitmq publish failed", zap.Error(err))
		return err
	}

	return nil
}
