package repository

import (
	"os"
	"time"

	"custodia_cheques/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// logEntryItem is the DynamoDB shape of one audit log line.
type logEntryItem struct {
	Timestamp string `dynamodbav:"timestamp"`
	Message   string `dynamodbav:"message"`
	User      string `dynamodbav:"user"`
}

func toLogEntryItems(entries []entities.LogEntry) []logEntryItem {
	if len(entries) == 0 {
		return nil
	}
	items := make([]logEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, logEntryItem{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
			Message:   e.Message,
			User:      e.User,
		})
	}
	return items
}

func fromLogEntryItems(items []logEntryItem) []entities.LogEntry {
	if len(items) == 0 {
		return nil
	}
	entries := make([]entities.LogEntry, 0, len(items))
	for _, it := range items {
		ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		entries = append(entries, entities.LogEntry{Timestamp: ts, Message: it.Message, User: it.User})
	}
	return entries
}

// marshalEntradasLog builds the :entradas value for
// list_append(if_not_exists(#log, :vazio), :entradas). Appending through
// list_append keeps concurrent writers from overwriting each other's entries.
func marshalEntradasLog(entries ...entities.LogEntry) (types.AttributeValue, error) {
	avs, err := attributevalue.MarshalList(toLogEntryItems(entries))
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{Value: avs}, nil
}

func listaVazia() types.AttributeValue {
	return &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
}

func decimalToString(v decimal.Decimal) string {
	return v.String()
}

func decimalFromString(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func parseTempo(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
