package audit

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Marshal and Unmarshal.
type Format string

const (
	// FormatJSON encodes snapshots as JSON, the default for audit files.
	FormatJSON Format = "json"

	// FormatYAML encodes snapshots as YAML, convenient for hand inspection.
	FormatYAML Format = "yaml"

	// FormatMsgpack encodes snapshots as MessagePack, compact for
	// high-volume logs or cross-service transfer.
	FormatMsgpack Format = "msgpack"
)

// Marshal encodes a Snapshot in the given format. Encoding is lossless for
// every populated field.
func Marshal(f Format, s Snapshot) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot to json: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot to yaml: %w", err)
		}
		return data, nil
	case FormatMsgpack:
		data, err := msgpack.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot to msgpack: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", f)
	}
}

// Unmarshal decodes a Snapshot encoded in the given format.
func Unmarshal(f Format, data []byte) (Snapshot, error) {
	var s Snapshot
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return Snapshot{}, fmt.Errorf("unmarshal json snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Snapshot{}, fmt.Errorf("unmarshal yaml snapshot: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &s); err != nil {
			return Snapshot{}, fmt.Errorf("unmarshal msgpack snapshot: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("unsupported snapshot format %q", f)
	}
	return s, nil
}
