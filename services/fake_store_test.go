package services

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeStore is an in-memory Store for tests. It understands the SET update
// expressions the services emit, including list_append/if_not_exists, and
// evaluates equality key conditions and filters.
type fakeStore struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue

	failPut    map[string]error
	failQuery  map[string]error
	failUpdate map[string]error
	failScan   map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables:     make(map[string][]map[string]types.AttributeValue),
		failPut:    make(map[string]error),
		failQuery:  make(map[string]error),
		failUpdate: make(map[string]error),
		failScan:   make(map[string]error),
	}
}

func (f *fakeStore) PutItem(_ context.Context, tableName string, item interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failPut[tableName]; err != nil {
		return err
	}
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	f.tables[tableName] = append(f.tables[tableName], marshaled)
	return nil
}

func (f *fakeStore) GetItem(_ context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.tables[tableName] {
		if matchesKey(item, key) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (f *fakeStore) UpdateItem(_ context.Context, tableName, updateExpression string,
	key map[string]types.AttributeValue,
	values map[string]types.AttributeValue,
	names map[string]string) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failUpdate[tableName]; err != nil {
		return nil, err
	}

	var item map[string]types.AttributeValue
	for _, existing := range f.tables[tableName] {
		if matchesKey(existing, key) {
			item = existing
			break
		}
	}
	if item == nil {
		// upsert semantics
		item = make(map[string]types.AttributeValue)
		for k, v := range key {
			item[k] = v
		}
		f.tables[tableName] = append(f.tables[tableName], item)
	}

	if err := applySet(item, updateExpression, values, names); err != nil {
		return nil, err
	}

	result := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		result[k] = v
	}
	return result, nil
}

func (f *fakeStore) QueryItemsWithIndex(_ context.Context, tableName, _, keyConditionExpression string,
	values map[string]types.AttributeValue,
	names map[string]string,
	filterExpression string) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failQuery[tableName]; err != nil {
		return nil, err
	}

	var matched []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if evalEquality(item, keyConditionExpression, values, names) &&
			(filterExpression == "" || evalEquality(item, filterExpression, values, names)) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (f *fakeStore) ScanAllItems(_ context.Context, tableName string, result interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failScan[tableName]; err != nil {
		return err
	}
	return attributevalue.UnmarshalListOfMaps(f.tables[tableName], result)
}

func (f *fakeStore) count(tableName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[tableName])
}

func (f *fakeStore) totalItems() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, items := range f.tables {
		total += len(items)
	}
	return total
}

func matchesKey(item, key map[string]types.AttributeValue) bool {
	for attr, want := range key {
		if stringValue(item[attr]) != stringValue(want) {
			return false
		}
	}
	return true
}

func stringValue(attr types.AttributeValue) string {
	if s, ok := attr.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// evalEquality evaluates "a = :x AND b = :y" style expressions
func evalEquality(item map[string]types.AttributeValue, expression string,
	values map[string]types.AttributeValue, names map[string]string) bool {
	for _, clause := range strings.Split(expression, " AND ") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			return false
		}
		field := resolveName(strings.TrimSpace(parts[0]), names)
		want := values[strings.TrimSpace(parts[1])]
		if stringValue(item[field]) != stringValue(want) {
			return false
		}
	}
	return true
}

// applySet interprets "SET a = <operand>, b = <operand>" update expressions
func applySet(item map[string]types.AttributeValue, expression string,
	values map[string]types.AttributeValue, names map[string]string) error {
	expression = strings.TrimPrefix(expression, "SET ")
	for _, clause := range splitTopLevel(expression) {
		parts := strings.SplitN(clause, "=", 2)
		field := resolveName(strings.TrimSpace(parts[0]), names)
		item[field] = resolveOperand(item, strings.TrimSpace(parts[1]), values, names)
	}
	return nil
}

func resolveOperand(item map[string]types.AttributeValue, operand string,
	values map[string]types.AttributeValue, names map[string]string) types.AttributeValue {
	switch {
	case strings.HasPrefix(operand, ":"):
		return values[operand]
	case strings.HasPrefix(operand, "list_append("):
		args := splitTopLevel(operand[len("list_append(") : len(operand)-1])
		left := asList(resolveOperand(item, strings.TrimSpace(args[0]), values, names))
		right := asList(resolveOperand(item, strings.TrimSpace(args[1]), values, names))
		return &types.AttributeValueMemberL{Value: append(append([]types.AttributeValue{}, left...), right...)}
	case strings.HasPrefix(operand, "if_not_exists("):
		args := splitTopLevel(operand[len("if_not_exists(") : len(operand)-1])
		field := resolveName(strings.TrimSpace(args[0]), names)
		if existing, ok := item[field]; ok {
			return existing
		}
		return resolveOperand(item, strings.TrimSpace(args[1]), values, names)
	default:
		return item[resolveName(operand, names)]
	}
}

func asList(attr types.AttributeValue) []types.AttributeValue {
	if l, ok := attr.(*types.AttributeValueMemberL); ok {
		return l.Value
	}
	return nil
}

func resolveName(name string, names map[string]string) string {
	if strings.HasPrefix(name, "#") {
		if resolved, ok := names[name]; ok {
			return resolved
		}
	}
	return name
}

// splitTopLevel splits on commas outside parentheses
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}
