package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, MakeChunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]byte{{1, 2, 3, 4}}, MakeChunks([]byte{1, 2, 3, 4}, 4))
	assert.Empty(t, MakeChunks([]int{}, 3))
	assert.Nil(t, MakeChunks([]int{1}, 0))
}

func TestNearestDivisibleByM(t *testing.T) {
	expectedValues := map[int]int{
		0:   0,
		1:   16,
		16:  16,
		17:  32,
		100: 112,
	}
	for n, expected := range expectedValues {
		assert.Equal(t, expected, NearestDivisibleByM(n, 16))
	}
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, Repeat(3, 1.0))
	assert.Nil(t, Repeat(0, "a"))
	assert.Nil(t, Repeat(-1, 0))
}

func TestShallowCopy(t *testing.T) {
	original := []float64{1, 2, 3}
	copied := ShallowCopy(original)
	copied[0] = 10
	assert.Equal(t, []float64{1, 2, 3}, original)
	assert.Equal(t, []float64{10, 2, 3}, copied)

	assert.Nil(t, ShallowCopy[byte](nil))
	assert.NotNil(t, ShallowCopy([]byte{}))
}

func TestDumpJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, DumpJSON(map[string]int{"a": 1}))
}

func TestErrUnreachableCode(t *testing.T) {
	err := ErrUnreachableCode{Caller: "FieldBrowser.View"}
	assert.Equal(t, "FieldBrowser.View unreachable code", err.Error())

	err = ErrUnreachableCode{Caller: "FieldBrowser.View", State: "raw"}
	assert.Equal(t, `FieldBrowser.View unreachable code: invalid state "raw"`, err.Error())
}
