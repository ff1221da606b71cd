// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const snippetHeader = `package snippet

import (
	"github.com/born-ml/detkit/expr"
	"github.com/born-ml/detkit/linalg"
	"github.com/born-ml/detkit/tensor"
)

var (
	_ = expr.Of[float64, tensor.Square[tensor.D1]]
	_ = linalg.Resolve
	_ tensor.D1
)
`

// typeCheck writes body into a throwaway package inside the module and
// returns the messages of every error reported while loading it.
func typeCheck(t *testing.T, body string) []string {
	t.Helper()

	dir, err := os.MkdirTemp(".", "snippet")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	src := snippetHeader + "\n" + body + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snippet.go"), []byte(src), 0o600))

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  ".",
	}
	pkgs, err := packages.Load(cfg, "./"+filepath.Base(dir))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	msgs := make([]string, 0, len(pkgs[0].Errors))
	for _, e := range pkgs[0].Errors {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

func TestBuildAcceptsSupportedPolicies(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	msgs := typeCheck(t, `
func simple(m tensor.Matrix[float64, tensor.D4]) float64 { return linalg.Determinant(m) }

func qr(m tensor.Matrix[float64, tensor.D8]) float64 { return linalg.DeterminantQR(m) }

func batch(a tensor.Array[float32, tensor.Batched[tensor.Axes2[tensor.D2, tensor.D3], tensor.D3]]) tensor.Array[float32, tensor.Axes2[tensor.D2, tensor.D3]] {
	return linalg.BatchDeterminant(a)
}

func lazy(m tensor.Matrix[float64, tensor.D2]) float64 { return linalg.LogDet(expr.Neg(expr.Of(m))) }
`)
	assert.Empty(t, msgs)
}

func TestBuildRejectsUnsupportedPolicies(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "simple 5x5",
			body: `var _ = linalg.Determinant[float64, tensor.D5]`,
			want: "does not satisfy",
		},
		{
			name: "simple 5x5 inferred",
			body: `func f(m tensor.Matrix[float64, tensor.D5]) float64 { return linalg.Determinant(m) }`,
			want: "does not satisfy",
		},
		{
			name: "batch of 5x5",
			body: `func f(a tensor.Array[float64, tensor.Batched[tensor.Axes1[tensor.D3], tensor.D5]]) {
	_ = linalg.BatchDeterminant(a)
}`,
			want: "does not satisfy",
		},
		{
			name: "adapter over 6x6 expression",
			body: `func f(m tensor.Matrix[float64, tensor.D6]) float64 { return linalg.AbsDet(expr.Of(m)) }`,
			want: "does not satisfy",
		},
		{
			name: "dimension embedding a small one",
			body: `type d7 struct{ tensor.D2 }

func (d7) Extent() int { return 7 }

var _ = linalg.Determinant[float64, d7]`,
			want: "does not satisfy",
		},
		{
			name: "dimension embedding a small one in a batch",
			body: `type d7 struct{ tensor.D4 }

func (d7) Extent() int { return 7 }

func f(a tensor.Array[float64, tensor.Batched[tensor.Axes1[tensor.D2], d7]]) {
	_ = linalg.BatchDeterminant(a)
}`,
			want: "does not satisfy",
		},
		{
			name: "rref",
			body: `var _ = linalg.DeterminantRREF[float64, tensor.D3]`,
			want: "undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := typeCheck(t, tt.body)
			require.NotEmpty(t, msgs, "snippet must not compile")
			assert.True(t, containsAny(msgs, tt.want), "errors %q should mention %q", msgs, tt.want)
		})
	}
}

func containsAny(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
