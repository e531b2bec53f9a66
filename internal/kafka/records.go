package kafka

import (
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

func toRawRecord(r *kgo.Record) domain.RawRecord {
	return domain.RawRecord{
		Topic:       r.Topic,
		Partition:   r.Partition,
		Offset:      r.Offset,
		LeaderEpoch: r.LeaderEpoch,
		Key:         r.Key,
		Value:       r.Value,
		Headers:     fromKgoHeaders(r.Headers),
		Timestamp:   r.Timestamp,
	}
}

// toCommitRecord: для коммита клиенту нужны только координаты записи.
func toCommitRecord(rec domain.RawRecord) *kgo.Record {
	return &kgo.Record{
		Topic:       rec.Topic,
		Partition:   rec.Partition,
		Offset:      rec.Offset,
		LeaderEpoch: rec.LeaderEpoch,
	}
}

func toKgoHeaders(h map[string][]byte) []kgo.RecordHeader {
	if len(h) == 0 {
		return nil
	}
	out := make([]kgo.RecordHeader, 0, len(h))
	for k, v := range h {
		out = append(out, kgo.RecordHeader{Key: k, Value: v})
	}
	return out
}

func fromKgoHeaders(h []kgo.RecordHeader) map[string][]byte {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string][]byte, len(h))
	for _, kv := range h {
		out[kv.Key] = kv.Value
	}
	return out
}
