package points

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

type ActivityReader struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *ActivityReader, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_ACTIVITY_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_ACTIVITY_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_ACTIVITY_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_ACTIVITY_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "points_activity",
	}
	return &ActivityReader{kafka.NewReader(kafkaconfig)}, nil
}

func (k *ActivityReader) GetNewMessage(ctx context.Context) (eventJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *ActivityReader) CloseReader() {
	k.reader.Close()
}
