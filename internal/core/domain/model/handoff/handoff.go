// Package handoff implements the QR payload codec for delivery handoff.
// A commerce encodes a payload and renders it as a scannable code; a courier
// scans and decodes it, then claims the delivery through the collect
// operation. Decoding never mutates state.
//
// The wire format is a JSON object:
//
//	{"deliveryId":"DEL-...","commerceName":"...","address":"...","value":12.5,"timestamp":1700000000000}
//
// The payload carries no signature and no expiry, so a copied or replayed
// code stays redeemable until the delivery leaves pending status. The single
// collection per delivery enforced by the state machine is the only replay
// protection.
package handoff

import (
	"encoding/json"
	"time"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"
)

// Payload is the content of a scannable handoff code.
type Payload struct {
	DeliveryID   string  `json:"deliveryId"`
	CommerceName string  `json:"commerceName"`
	Address      string  `json:"address"`
	Value        float64 `json:"value"`
	// Timestamp is the encoding instant in milliseconds since the epoch.
	Timestamp int64 `json:"timestamp"`
}

// Encode serializes a delivery's handoff payload for rendering as a QR code.
// Deterministic given the delivery except for the embedded timestamp.
func Encode(d *delivery.Delivery, now time.Time) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	payload := Payload{
		DeliveryID:   d.ID().String(),
		CommerceName: d.CommerceName(),
		Address:      d.Address(),
		Value:        d.Value(),
		Timestamp:    now.UnixMilli(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// Decode parses a scanned payload back into its structured form.
// Returns a malformed-payload error when the raw content is not JSON or does
// not carry a well-formed delivery identifier. Age is not checked: any
// well-formed payload decodes regardless of its timestamp.
func Decode(raw string) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Payload{}, errs.NewMalformedPayloadErrorWithCause("not a valid handoff code", err)
	}

	if payload.DeliveryID == "" {
		return Payload{}, errs.NewMalformedPayloadError("deliveryId is empty")
	}

	if _, err := delivery.ParseID(payload.DeliveryID); err != nil {
		return Payload{}, errs.NewMalformedPayloadErrorWithCause("deliveryId is not well formed", err)
	}

	return payload, nil
}
