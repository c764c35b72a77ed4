package audit

import (
	"context"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type auditPublisher struct {
	Connection     *amqp091.Connection
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuditPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuditPublisher {
	return &auditPublisher{
		Connection:     connection,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// PublishLoginEvent is fire and forget: any failure is logged and
// swallowed so the auth outcome never depends on the audit sink.
func (p *auditPublisher) PublishLoginEvent(ctx context.Context, event contracts.LoginEvent) {
	queueName := p.InternalConfig.RabbitMQ.LoginEventQueue

	channel, err := p.Connection.Channel()
	if err != nil {
		p.Log.Warn("audit publisher failed to open channel",
			zap.String(constvars.LoggingQueueKey, queueName),
			zap.Error(err),
		)
		return
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		p.Log.Warn("audit publisher failed to declare queue",
			zap.String(constvars.LoggingQueueKey, queueName),
			zap.Error(err),
		)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Warn("audit publisher failed to marshal event",
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
		return
	}

	err = channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		p.Log.Warn("audit publisher failed to publish event",
			zap.String(constvars.LoggingQueueKey, queueName),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
		return
	}

	p.Log.Debug("audit event published",
		zap.String(constvars.LoggingQueueKey, queueName),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingEmailKey, event.Email),
	)
}
