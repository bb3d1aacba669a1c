package record

import (
	"encoding/json"
	"fmt"

	"travelmap/internal/app"
)

// Export serializes a record to its native backup JSON form. The
// output re-imports losslessly via Import.
func Export(rec app.TravelRecord) ([]byte, error) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export record: %w", err)
	}
	return out, nil
}
