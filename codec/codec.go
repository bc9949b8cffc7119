// Package codec centralizes the encoding of exported overlap tables and
// crossover graphs.
//
// Snapshots are self-describing: they record the codec name in their header,
// so files written with one codec are decoded with the same one regardless
// of the library default at read time.
package codec

// Codec encodes/decodes exported values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
//
// Newly written snapshots record the codec name in their header, so changing
// the default never breaks existing files.
var Default Codec = GoJSON{}
