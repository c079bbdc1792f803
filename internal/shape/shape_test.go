package shape

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	person struct {
		Name string
	}

	token struct {
		value string
	}

	tasks struct {
		items []string
	}

	status int
)

func (t token) String() string { return t.value }

func (t *tasks) All() (interface{}, error) { return t.items, nil }

func (s status) String() string { return "active" }

func TestClassify(t *testing.T) {
	cursor, err := mongo.NewCursorFromDocuments([]interface{}{bson.D{}}, nil, nil)
	if !assert.Nil(t, err) {
		return
	}
	var testCases = []struct {
		description string
		value       interface{}
		expect      Kind
	}{
		{description: "nil", value: nil, expect: Protected},
		{description: "int", value: 1, expect: Protected},
		{description: "time", value: time.Now(), expect: Protected},
		{description: "decimal", value: decimal.New(12, 1), expect: Protected},
		{description: "string", value: "abc", expect: Text},
		{description: "enum with text", value: status(1), expect: Text},
		{description: "bytes", value: []byte("abc"), expect: Text},
		{description: "uuid", value: uuid.New(), expect: Text},
		{description: "object id", value: primitive.NewObjectID(), expect: Text},
		{description: "opaque struct", value: token{value: "x"}, expect: Text},
		{description: "error", value: errors.New("x"), expect: Text},
		{description: "map", value: map[string]interface{}{"a": 1}, expect: Mapping},
		{description: "struct", value: person{}, expect: Record},
		{description: "struct pointer", value: &person{}, expect: Record},
		{description: "slice", value: []int{1}, expect: Sequence},
		{description: "array", value: [2]string{}, expect: Sequence},
		{description: "set", value: map[int]struct{}{1: {}}, expect: Sequence},
		{description: "lazy sequence", value: func(yield func(string) bool) {}, expect: Sequence},
		{description: "cursor", value: cursor, expect: Cursor},
		{description: "document", value: bson.D{{Key: "a", Value: 1}}, expect: Document},
		{description: "document map", value: bson.M{"a": 1}, expect: Document},
		{description: "collection", value: &tasks{}, expect: Collection},
		{description: "callable", value: func() string { return "x" }, expect: Callable},
		{description: "callable with error", value: func() (int, error) { return 1, nil }, expect: Callable},
		{description: "function with params", value: func(int) int { return 1 }, expect: Text},
		{description: "channel", value: make(chan int), expect: Text},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Classify(testCase.value), testCase.description)
	}
}

func TestIndirect(t *testing.T) {
	text := "abc"
	textPtr := &text
	aPerson := &person{}
	var nilPtr *int
	assert.Equal(t, "abc", Indirect(&textPtr))
	assert.Equal(t, aPerson, Indirect(aPerson))
	assert.Equal(t, aPerson, Indirect(&aPerson))
	assert.Nil(t, Indirect(nilPtr))
	assert.Equal(t, 1, Indirect(1))
}

func TestInvoke(t *testing.T) {
	var testCases = []struct {
		description string
		fn          interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "interface result", fn: func() interface{} { return 1 }, expect: 1},
		{description: "typed result", fn: func() string { return "x" }, expect: "x"},
		{description: "result with nil error", fn: func() (int, error) { return 2, nil }, expect: 2},
		{description: "result with error", fn: func() (int, error) { return 0, errors.New("failed") }, expectErr: true},
		{description: "not callable", fn: func(int) {}, expectErr: true},
		{description: "nil function", fn: (func() int)(nil), expect: nil},
	}
	for _, testCase := range testCases {
		actual, err := Invoke(testCase.fn)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestIdentify(t *testing.T) {
	alice := &person{Name: "Alice"}
	twin := &person{Name: "Alice"}
	items := []int{1, 2}
	stack := Stack{}
	id, ok := Identify(alice)
	assert.True(t, ok)
	stack = stack.Push(id)

	twinID, _ := Identify(twin)
	assert.True(t, stack.Contains(id))
	assert.False(t, stack.Contains(twinID), "equal but distinct values")

	sliceID, ok := Identify(items)
	assert.True(t, ok)
	prefixID, _ := Identify(items[:1])
	assert.NotEqual(t, sliceID, prefixID)

	_, ok = Identify(person{})
	assert.False(t, ok)
	_, ok = Identify([]int{})
	assert.False(t, ok)
	_, ok = Identify(context.Background)
	assert.False(t, ok)

	child := stack.Push(sliceID)
	assert.Len(t, stack, 1)
	assert.Len(t, child, 2)
}
