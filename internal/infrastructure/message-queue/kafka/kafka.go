package kafka

import (
	"context"

	"github.com/curavet/clinic-admin-service/config"
	"github.com/segmentio/kafka-go"
)

func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return conn
}

// EventWriter adapts a leader connection to the service layer's message
// writer contract.
type EventWriter struct {
	conn *kafka.Conn
}

func CreateEventWriter(conn *kafka.Conn) *EventWriter {
	return &EventWriter{conn: conn}
}

func (w *EventWriter) WriteMessage(msg []byte) error {
	_, err := w.conn.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}
