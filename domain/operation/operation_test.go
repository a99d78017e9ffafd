package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		key    string
		want   Operation
		wantOK bool
	}{
		{key: "fibonacci", want: OpSequence, wantOK: true},
		{key: "prime", want: OpPrimeFilter, wantOK: true},
		{key: "lcm", want: OpLCM, wantOK: true},
		{key: "hcf", want: OpHCF, wantOK: true},
		{key: "AI", want: OpAnswerQuestion, wantOK: true},
		{key: "ai", wantOK: false},
		{key: "Fibonacci", wantOK: false},
		{key: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Parse(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"fibonacci", "prime", "lcm", "hcf", "AI"}, Keys())
}
