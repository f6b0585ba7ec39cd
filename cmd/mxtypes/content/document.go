// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/ref"
	"github.com/bureau-foundation/mxtypes/lib/schema"
)

// decodeDocument decodes a full event, or bare content of eventType
// when eventType is set. The result marshals to both JSON and CBOR.
func decodeDocument(format codec.Format, data []byte, eventType string, logger *slog.Logger) (any, error) {
	if eventType != "" {
		decoded, err := schema.DecodeContent(format, ref.EventType(eventType), data)
		if err != nil {
			return nil, fmt.Errorf("decode %s content: %w", eventType, err)
		}
		noteCustom(decoded, logger)
		logger.Debug("decoded content", "type", eventType, "input", format.String())
		return decoded, nil
	}

	var event schema.MessageLikeEvent
	if err := format.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	noteCustom(event.Content, logger)
	logger.Debug("decoded event",
		"type", event.Type().String(),
		"event_id", event.EventID.String(),
		"room_id", event.RoomID.String(),
		"input", format.String(),
	)
	return event, nil
}

// noteCustom logs when content fell through to the untyped
// representation, since no facet validation was applied.
func noteCustom(decoded schema.EventContent, logger *slog.Logger) {
	if custom, ok := decoded.(schema.CustomEventContent); ok {
		logger.Info("unrecognized event type; content kept as plain fields without facet validation",
			"type", custom.EventType().String(),
			"fields", len(custom.Fields),
		)
	}
}
