// Package operation provides the domain types shared by the BFHL modules.
package operation

// Operation identifies one of the request intents accepted by POST /bfhl.
// The string value is the JSON key used on the wire.
type Operation string

const (
	// OpSequence generates the first N Fibonacci terms.
	OpSequence Operation = "fibonacci"
	// OpPrimeFilter keeps the prime values of a list.
	OpPrimeFilter Operation = "prime"
	// OpLCM reduces a list to its least common multiple.
	OpLCM Operation = "lcm"
	// OpHCF reduces a list to its highest common factor.
	OpHCF Operation = "hcf"
	// OpAnswerQuestion resolves a question to a single-word answer.
	OpAnswerQuestion Operation = "AI"
)

// MaxSequenceTerms is the largest Fibonacci term count whose terms all fit
// in an int64 (F(0) through F(92)).
const MaxSequenceTerms = 93

// All lists the recognized operations in their documented order.
var All = []Operation{OpSequence, OpPrimeFilter, OpLCM, OpHCF, OpAnswerQuestion}

// Parse returns the Operation named by key and whether it is recognized.
func Parse(key string) (Operation, bool) {
	for _, op := range All {
		if string(op) == key {
			return op, true
		}
	}
	return "", false
}

// Keys returns the wire keys of all recognized operations.
func Keys() []string {
	keys := make([]string, len(All))
	for i, op := range All {
		keys[i] = string(op)
	}
	return keys
}

// Value is the typed payload of an operation. Which field is meaningful
// depends on the Operation it travels with:
//   - OpSequence: Count
//   - OpPrimeFilter, OpLCM, OpHCF: Numbers
//   - OpAnswerQuestion: Question
type Value struct {
	Count    int64
	Numbers  []int64
	Question string
}

// Request is a validated operation ready for dispatch.
type Request struct {
	Operation Operation
	Value     Value
}
