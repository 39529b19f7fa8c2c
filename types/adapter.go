package types

type DestinationType string

const (
	ClickHouse DestinationType = "CLICKHOUSE"
)

// WriterConfig wraps the raw destination settings document together
// with the destination type selecting the writer implementation.
type WriterConfig struct {
	Type         DestinationType `json:"type"`
	WriterConfig any             `json:"writer"`
}
