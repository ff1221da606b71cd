package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/detkit/linalg"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI("version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "detkit "+version+"\n", out)
}

func TestSimplePolicy(t *testing.T) {
	code, out, errOut := runCLI("1,2;3,4", "1,0,0;0,1,0;0,0,1")
	require.Equal(t, exitOK, code, errOut)

	assert.Contains(t, out, "matrix 1 (2x2): det=-2 absdet=2 logdet=0.6931471805599453")
	assert.Contains(t, out, "matrix 2 (3x3): det=1 absdet=1 logdet=0")
}

func TestSingularLogDet(t *testing.T) {
	code, out, _ := runCLI("1,2;2,4")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "det=0 absdet=0 logdet=-Inf")
}

func TestQRPolicyLargeMatrix(t *testing.T) {
	code, out, errOut := runCLI("-policy", "qr",
		"2,0,0,0,0;0,2,0,0,0;0,0,2,0,0;0,0,0,2,0;0,0,0,0,2")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "matrix 1 (5x5):")
	assert.Contains(t, out, "absdet=32")
}

func TestSimplePolicyRejectsLargeMatrix(t *testing.T) {
	code, out, errOut := runCLI("1,2;3,4",
		"1,0,0,0,0;0,1,0,0,0;0,0,1,0,0;0,0,0,1,0;0,0,0,0,1")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out, "nothing is computed when any matrix is rejected")
	assert.Contains(t, errOut, "not implemented yet")
}

func TestRREFPolicyRejected(t *testing.T) {
	code, _, errOut := runCLI("-policy", "rref", "1,2;3,4")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "not implemented yet")
}

func TestUnknownPolicy(t *testing.T) {
	code, _, errOut := runCLI("-policy", "lu", "1,2;3,4")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unknown determinant policy")
}

func TestNoMatrices(t *testing.T) {
	code, _, errOut := runCLI()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "Usage: detkit")
}

func TestVerboseLogsStrategy(t *testing.T) {
	code, _, errOut := runCLI("-v", "1,2;3,4")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "resolved")
	assert.Contains(t, errOut, "strategy=kernel")
}

func TestParseMatrix(t *testing.T) {
	data, n, err := parseMatrix(" 1, 2 ; 3 ,4 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2, 3, 4}, data)

	tests := []struct {
		name string
		in   string
	}{
		{"not square", "1,2,3;4,5,6"},
		{"ragged", "1,2;3"},
		{"not a number", "1,x;3,4"},
		{"empty", ""},
		{"too large", "1;1;1;1;1;1;1;1;1"},
	}
	for _, tt := range tests {
		_, _, err := parseMatrix(tt.in)
		assert.Error(t, err, tt.name)
	}
}

func TestComputeWithoutInstantiation(t *testing.T) {
	_, err := compute(job{data: make([]float64, 81), n: 9, strategy: linalg.Factorization})
	assert.Error(t, err)
}
