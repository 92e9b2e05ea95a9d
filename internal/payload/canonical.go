package payload

import (
	"encoding/json"
	"fmt"

	"nfc-transfer-service/internal/models"
)

// Canonicalize serializes an intent as a JSON object with lexicographically
// sorted keys and string values. encoding/json sorts map keys, so the output
// is stable for a given intent.
func Canonicalize(intent models.TransferIntent) ([]byte, error) {
	data, err := json.Marshal(intent.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transfer intent: %w", err)
	}
	return data, nil
}

// parseCanonical is the inverse of Canonicalize
func parseCanonical(data []byte) (models.TransferIntent, error) {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.TransferIntent{}, fmt.Errorf("%w: %v", models.ErrIntentMalformed, err)
	}
	return models.ParseTransferIntent(fields)
}
