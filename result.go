package serializer

type resultKind uint8

const (
	valueResult resultKind = iota
	omitResult
	errorResult
)

// Result represents per field serialization result: a value, an omission or an error
type Result struct {
	kind  resultKind
	value interface{}
	err   error
}

// Value returns result value
func (r Result) Value() interface{} {
	return r.value
}

// Err returns result error
func (r Result) Err() error {
	return r.err
}

// IsOmitted returns true if field is omitted
func (r Result) IsOmitted() bool {
	return r.kind == omitResult
}

// Value creates value result
func Value(value interface{}) Result {
	return Result{kind: valueResult, value: value}
}

// Omit creates omitted field result
func Omit() Result {
	return Result{kind: omitResult}
}

// Fail creates error result
func Fail(err error) Result {
	return Result{kind: errorResult, err: err}
}

// Hook decides field result when depth is exhausted or recursion is detected
type Hook func(value interface{}) Result

func omit(interface{}) Result {
	return Omit()
}
