package contract_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
)

func validMedia() domain.MediaUploaded {
	return domain.MediaUploaded{
		TenantID:    "tenant-1",
		MediaID:     "3f6c1a4e-8a3b-4b7e-9e55-0a1c2d3e4f50",
		Kind:        "image",
		StorageKey:  "tenant-1/2025/cat.png",
		ContentType: "image/png",
		SizeBytes:   1024,
		Tags:        []string{"cat", "cover"},
		UploadedAt:  time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	c := contract.NewJSON[domain.MediaUploaded]("media.uploaded")
	if c.Topic() != "media.uploaded" || c.Transport() != contract.TransportJSON {
		t.Fatalf("unexpected topic/transport: %s/%s", c.Topic(), c.Transport())
	}

	in := validMedia()
	raw, err := c.Serialize(in)
	require.NoError(t, err)

	out, err := c.Deserialize(raw)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestJSON_SerializeIsDeterministic(t *testing.T) {
	t.Parallel()

	c := contract.NewJSON[map[string]int]("counters")
	v := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := c.Serialize(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		next, err := c.Serialize(v)
		require.NoError(t, err)
		require.Equal(t, string(first), string(next))
	}
}

func TestJSON_Deserialize_Rejects(t *testing.T) {
	t.Parallel()

	c := contract.NewJSON[domain.MediaUploaded]("media.uploaded")
	good, err := c.Serialize(validMedia())
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"not json", "not-json"},
		{"unknown field", `{"tenant_id":"t","extra":1}`},
		{"trailing data", string(good) + `{}`},
		{"schema: missing media_id", `{"tenant_id":"t","kind":"image","storage_key":"k","content_type":"x","uploaded_at":"2025-01-01T00:00:00Z"}`},
		{"schema: bad kind", `{"tenant_id":"t","media_id":"3f6c1a4e-8a3b-4b7e-9e55-0a1c2d3e4f50","kind":"zip","storage_key":"k","content_type":"x","uploaded_at":"2025-01-01T00:00:00Z"}`},
		{"schema: negative size", `{"tenant_id":"t","media_id":"3f6c1a4e-8a3b-4b7e-9e55-0a1c2d3e4f50","kind":"image","storage_key":"k","content_type":"x","size_bytes":-1,"uploaded_at":"2025-01-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := c.Deserialize([]byte(tt.raw))
			var serr *domain.SerializationError
			if !errors.As(err, &serr) {
				t.Fatalf("want SerializationError, got %v", err)
			}
			if serr.Topic != "media.uploaded" {
				t.Fatalf("topic: want media.uploaded, got %q", serr.Topic)
			}
			if domain.IsRetriable(err) {
				t.Fatalf("serialization errors must not be retriable")
			}
		})
	}
}

func TestJSON_Serialize_RejectsInvalid(t *testing.T) {
	t.Parallel()

	c := contract.NewJSON[*domain.MediaUploaded]("media.uploaded")

	_, err := c.Serialize(nil)
	var serr *domain.SerializationError
	require.ErrorAs(t, err, &serr)

	bad := validMedia()
	bad.Kind = ""
	_, err = c.Serialize(&bad)
	require.ErrorAs(t, err, &serr)
}

func TestProto_RoundTrip(t *testing.T) {
	t.Parallel()

	c := contract.NewProto[*structpb.Struct]("catalog.item.indexed")
	if c.Transport() != contract.TransportBinary {
		t.Fatalf("want binary transport, got %s", c.Transport())
	}

	in, err := structpb.NewStruct(map[string]any{
		"tenant_id": "tenant-1",
		"media_id":  "m-1",
		"size":      42.0,
		"tags":      []any{"a", "b"},
		"nested":    map[string]any{"z": true, "a": nil},
	})
	require.NoError(t, err)

	raw, err := c.Serialize(in)
	require.NoError(t, err)

	again, err := c.Serialize(in)
	require.NoError(t, err)
	require.Equal(t, raw, again, "deterministic encoding expected")

	out, err := c.Deserialize(raw)
	require.NoError(t, err)
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch: in=%v out=%v", in, out)
	}
}

func TestProto_WrapperRoundTrip(t *testing.T) {
	t.Parallel()

	c := contract.NewProto[*wrapperspb.StringValue]("sessions.revoked")
	for _, s := range []string{"", "user-1", "пользователь"} {
		raw, err := c.Serialize(wrapperspb.String(s))
		require.NoError(t, err)
		out, err := c.Deserialize(raw)
		require.NoError(t, err)
		require.Equal(t, s, out.GetValue())
	}
}

func TestProto_Errors(t *testing.T) {
	t.Parallel()

	c := contract.NewProto[*structpb.Struct]("catalog.item.indexed")

	_, err := c.Serialize(nil)
	var serr *domain.SerializationError
	require.ErrorAs(t, err, &serr)

	// 0x0a: поле 1 wire-type 2, дальше длина больше остатка буфера
	_, err = c.Deserialize([]byte{0x0a, 0xff, 0x01})
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "catalog.item.indexed", serr.Topic)
}
