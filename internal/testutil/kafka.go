//go:build integration

package testutil

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup: уникальные topic/group на основе базового префикса.
// Пример: base="media-itest" даёт "media-itest-20250826T010203123456789" и "...-group".
func UniqueTopicAndGroup(base string) (topic, group string) {
	// наносекунды включаем в строку и убираем точку, чтобы тема была валидной
	s := time.Now().UTC().Format("20060102T150405.000000000")
	s = strings.ReplaceAll(s, ".", "")
	return fmt.Sprintf("%s-%s", base, s), fmt.Sprintf("%s-%s-group", base, s)
}

// EnsureTopic создаёт топик с partitions партициями (существующий топик не ошибка)
// и ждёт его появления в метаданных.
// Параметр broker может быть:
//   - "host:port"
//   - "PLAINTEXT://host:port" (как отдаёт testcontainers)
//   - "host1:port1,host2:port2" (берётся первый)
func EnsureTopic(ctx context.Context, broker, topic string, partitions int) error {
	if partitions <= 0 {
		partitions = 1
	}
	addr := firstBootstrap(broker)

	conn, err := kafka.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	// CreateTopics работает только через контроллер кластера.
	ctrl, err := conn.Controller()
	if err != nil {
		return err
	}
	adminAddr := net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port))

	admin, err := kafka.Dial("tcp", adminAddr)
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "already exists") {
			return err
		}
	}

	return waitTopicReady(ctx, addr, topic, partitions)
}

// firstBootstrap берёт первый адрес из bootstrap-строки,
// а также снимает схему вида "PLAINTEXT://".
func firstBootstrap(raw string) string {
	parts := strings.Split(raw, ",")
	first := strings.TrimSpace(parts[0])

	if strings.Contains(first, "://") {
		if u, err := url.Parse(first); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return first
}

// waitTopicReady опрашивает метаданные, пока у топика не появятся все партиции.
func waitTopicReady(ctx context.Context, broker, topic string, partitions int) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 25), ctx)
	err := backoff.Retry(func() error {
		c, err := kafka.Dial("tcp", broker)
		if err != nil {
			return err
		}
		defer c.Close()

		parts, err := c.ReadPartitions(topic)
		if err != nil {
			return err
		}
		if len(parts) < partitions {
			return fmt.Errorf("%d of %d partitions", len(parts), partitions)
		}
		return nil
	}, policy)
	if err != nil {
		return fmt.Errorf("topic %q not ready: %w", topic, err)
	}
	return nil
}

// ReadN читает n сообщений топика с начала отдельным ридером kafka-go (без группы),
// чтобы проверять продьюсер независимо от клиента рантайма.
func ReadN(ctx context.Context, broker, topic string, n int) ([]kafka.Message, error) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{firstBootstrap(broker)},
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10 << 20,
		MaxWait:   200 * time.Millisecond,
	})
	defer r.Close()

	out := make([]kafka.Message, 0, n)
	for len(out) < n {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			return out, fmt.Errorf("read %d/%d: %w", len(out), n, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// WriteRaw пишет сырые значения в топик (например, битый JSON) в обход контрактов.
func WriteRaw(ctx context.Context, broker, topic string, values ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(firstBootstrap(broker)),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(values))
	for _, v := range values {
		msgs = append(msgs, kafka.Message{Value: v})
	}
	return w.WriteMessages(ctx, msgs...)
}
