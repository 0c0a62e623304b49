// Package mailworker consumes delivery status-change events and mails the
// recipient. It runs inside the API process but only touches the queue and
// the SMTP relay, so it can be lifted out into its own binary untouched.
package mailworker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/thiagohrcosta/FastFeet-API/config"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

const mailSubject = "Update on your delivery"

// SendFunc matches smtp.SendMail and exists so tests can intercept the
// outgoing mail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Consumer struct {
	cfg        config.MQ
	smtp       config.SMTP
	smtpAddr   string
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
	send       SendFunc
}

func New(cfg config.MQ, smtpCfg config.SMTP, smtpAddr string, logger *zap.Logger) *Consumer {
	return &Consumer{
		cfg:      cfg,
		smtp:     smtpCfg,
		smtpAddr: smtpAddr,
		log:      logger,
		send:     smtp.SendMail,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("mail consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	if err = c.chConsume.QueueBind(
		c.cfg.QueueName,
		mq.RouteStatusChanged,
		c.cfg.Exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue bind %s: %w", mq.RouteStatusChanged, err)
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) MailWorker(ctx context.Context) {
	c.log.Info("starting mail worker")

	defer func() {
		c.log.Info("mail worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			if err := c.mail(msg); err != nil {
				// alert
				c.log.Error("mail dispatch error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// mail decodes one status-change event and sends the notification. Failures
// are logged by the caller and never retried; the status change itself is
// already committed.
func (c *Consumer) mail(msg amqp091.Delivery) error {
	var e mq.Event
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}
	if e.RecipientEmail == "" {
		return fmt.Errorf("event %s has no recipient email", e.Id)
	}

	var auth smtp.Auth
	if c.smtp.User != "" {
		auth = smtp.PlainAuth("", c.smtp.User, c.smtp.Password, c.smtp.Host)
	}

	if err := c.send(
		c.smtpAddr,
		auth,
		c.smtp.From,
		[]string{e.RecipientEmail},
		composeMail(c.smtp.From, e),
	); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	c.log.Info("status-change mail sent",
		zap.String("delivery_id", e.DeliveryID),
		zap.String("status", e.Status),
	)

	return nil
}

func composeMail(from string, e mq.Event) []byte {
	body := fmt.Sprintf(
		"Hello! Your order (%s) has been updated. Current status: %s.",
		e.Product,
		e.Status,
	)

	return []byte(
		"From: " + from + "\r\n" +
			"To: " + e.RecipientEmail + "\r\n" +
			"Subject: " + mailSubject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
			"\r\n" +
			body + "\r\n",
	)
}
