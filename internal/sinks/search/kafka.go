package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"roster/internal/account/models"
	"roster/internal/sinks/metrics"
	"roster/pkg/requestcontext"
)

const headerOp = "op"

// Producer is the subset of *kgo.Client the sink needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// KafkaSink publishes documents to the index topic keyed by account id.
// Removes are tombstones so a compacted topic converges to one document per
// live account.
type KafkaSink struct {
	producer Producer
	topic    string
}

func NewKafkaSink(producer Producer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (k *KafkaSink) Index(ctx context.Context, a *models.Account) (err error) {
	defer func(start time.Time) { metrics.Observe("search", "index", start, err) }(time.Now())

	doc := NewDocument(OpIndex, a, requestcontext.Now(ctx))
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode index document: %w", err)
	}
	return k.produce(ctx, OpIndex, a.ID, value)
}

func (k *KafkaSink) Remove(ctx context.Context, a *models.Account) (err error) {
	defer func(start time.Time) { metrics.Observe("search", "remove", start, err) }(time.Now())
	return k.produce(ctx, OpRemove, a.ID, nil)
}

func (k *KafkaSink) produce(ctx context.Context, op Op, accountID string, value []byte) error {
	rec := &kgo.Record{
		Topic:   k.topic,
		Key:     []byte(accountID),
		Value:   value,
		Headers: []kgo.RecordHeader{{Key: headerOp, Value: []byte(op)}},
	}
	if err := k.producer.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce %s for account %s: %w", op, accountID, err)
	}
	return nil
}

// DecodeRecord turns a consumed record back into a document.
func DecodeRecord(rec *kgo.Record) (Document, error) {
	op := OpIndex
	for _, h := range rec.Headers {
		if h.Key == headerOp {
			op = Op(h.Value)
		}
	}
	if op == OpRemove || rec.Value == nil {
		return Document{Op: OpRemove, AccountID: string(rec.Key), IndexedAt: rec.Timestamp}, nil
	}
	var doc Document
	if err := json.Unmarshal(rec.Value, &doc); err != nil {
		return Document{}, fmt.Errorf("decode index document: %w", err)
	}
	return doc, nil
}
