package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeAcker struct {
	mu    sync.Mutex
	acks  []uint64
	nacks []uint64
}

func (a *fakeAcker) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acks = append(a.acks, tag)
	return nil
}

func (a *fakeAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacks = append(a.nacks, tag)
	return nil
}

func (a *fakeAcker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *fakeAcker) counts() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.acks), len(a.nacks)
}

type fakeConsumer struct {
	ch chan amqp.Delivery
}

func (c *fakeConsumer) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	return c.ch, nil
}

type recordingDelivery struct {
	mu   sync.Mutex
	got  []entity.ContactMessage
	fail bool
}

func (r *recordingDelivery) SendContact(ctx context.Context, msg entity.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("smtp down")
	}
	r.got = append(r.got, msg)
	return nil
}

func delivery(t *testing.T, acker amqp.Acknowledger, tag uint64, body any) amqp.Delivery {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case []byte:
		raw = b
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}
	return amqp.Delivery{Acknowledger: acker, DeliveryTag: tag, Body: raw}
}

func runWorker(t *testing.T, w *Worker) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx, QueueName) }()
	return cancel, done
}

func TestWorkerAcksDeliveredMessages(t *testing.T) {
	acker := &fakeAcker{}
	consumer := &fakeConsumer{ch: make(chan amqp.Delivery, 2)}
	sink := &recordingDelivery{}
	w := NewWorker(consumer, sink, zap.NewNop())

	consumer.ch <- delivery(t, acker, 1, entity.ContactMessage{ID: "m1"})
	consumer.ch <- delivery(t, acker, 2, []byte("{not json"))

	cancel, done := runWorker(t, w)
	assert.Eventually(t, func() bool {
		acks, nacks := acker.counts()
		return acks == 1 && nacks == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	require.Len(t, sink.got, 1)
	assert.Equal(t, "m1", sink.got[0].ID)
}

func TestWorkerNacksWhenDeliveryFails(t *testing.T) {
	acker := &fakeAcker{}
	consumer := &fakeConsumer{ch: make(chan amqp.Delivery, 1)}
	w := NewWorker(consumer, &recordingDelivery{fail: true}, zap.NewNop())

	consumer.ch <- delivery(t, acker, 7, entity.ContactMessage{ID: "m7"})

	cancel, done := runWorker(t, w)
	assert.Eventually(t, func() bool {
		_, nacks := acker.counts()
		return nacks == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	acks, _ := acker.counts()
	assert.Zero(t, acks)
}

func TestWorkerReturnsErrorWhenChannelCloses(t *testing.T) {
	consumer := &fakeConsumer{ch: make(chan amqp.Delivery)}
	close(consumer.ch)
	w := NewWorker(consumer, &recordingDelivery{}, zap.NewNop())

	err := w.Start(context.Background(), QueueName)
	assert.Error(t, err)
}
