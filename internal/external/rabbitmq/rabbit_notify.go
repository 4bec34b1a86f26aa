package points

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	model "github.com/aksisonline/mockify/points/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const queue = "notifications"

func dial() (*amqp.Connection, error) {
	// config
	rabbiturl := os.Getenv("RABBIT_URL")
	if rabbiturl == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	rabbitport := os.Getenv("RABBIT_PORT")
	if rabbitport == "" {
		return nil, fmt.Errorf("env RABBIT_PORT is not set")
	}
	rabbituser := os.Getenv("RABBIT_USER")
	if rabbituser == "" {
		return nil, fmt.Errorf("env RABBIT_USER is not set")
	}
	rabbitpass := os.Getenv("RABBIT_PASSWORD")
	if rabbitpass == "" {
		return nil, fmt.Errorf("env RABBIT_PASSWORD is not set")
	}
	return amqp.Dial("amqp://" + rabbituser + ":" + rabbitpass + "@" + rabbiturl + ":" + rabbitport + "/points")
}

// Публикация уведомлений (сторона API)
type NotifyPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewNotifyPublisher() (*NotifyPublisher, error) {
	conn, err := dial()
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &NotifyPublisher{conn, ch}, nil
}

func (p *NotifyPublisher) Publish(ctx context.Context, n model.Notification) error {
	msg, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        msg,
		})
}

func (p *NotifyPublisher) Close() {
	p.ch.Close()
	p.conn.Close()
}

// Чтение уведомлений (сторона notifier-джоба)
type NotifyConsumer struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	Msg  <-chan amqp.Delivery
}

func NewNotifyConsumer() (*NotifyConsumer, error) {
	conn, err := dial()
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	msg, err := ch.Consume(
		queue, // queue
		"",    // consumer
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &NotifyConsumer{conn, ch, msg}, nil
}

func (c *NotifyConsumer) Close() {
	c.ch.Close()
	c.conn.Close()
}
