package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runString(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	t.Log(stderr.String())
	return stdout.String(), code
}

func TestRun(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		out   string
		code  int
	}{
		{"arg", "", []string{"1+2*3"}, "7\n", 0},
		{"args", "", []string{"1+2*3", "(51/3)+5/2-56+(2-4)"}, "7\n-38.5\n", 0},
		{"echo", "", []string{"-echo", "1+2*3"}, "1 2 3 * + : 7\n", 0},
		{"fmt", "", []string{"-fmt", "%.3f", "10/4"}, "2.500\n", 0},
		{"stdin", "  (1+2)*3\n", nil, "9\n", 0},
		{"stdin-lines", "1+1\n\n2*3\n", []string{"-n"}, "2\n6\n", 0},
		{"stdin-one", "1+1\n2*3\n", nil, "invalid expression \"1+1\\n2*3\": 4: illegal character\n", 1},
		{"stdin-dash", "5", []string{"-in", "-"}, "5\n", 0},
		{"div-zero", "", []string{"(51/(5-5))", "2"}, "4: cannot divide 51 by zero\n2\n", 1},
		{"invalid", "", []string{"2/0"}, "invalid expression \"2/0\": 2: division by literal zero\n", 1},
		{"malformed", "", []string{"1 2"}, "malformed expression: 2 values left after evaluation\n", 1},
		{"empty", "", nil, "", 0},
		{"bad-output", "", []string{"-o", "json", "1"}, "", 2},
		{"bad-level", "", []string{"-log-level", "loud", "1"}, "", 2},
		{"bad-flag", "", []string{"-zzz"}, "", 2},
		{"missing-in", "", []string{"-in", "does-not-exist.txt"}, "", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, code := runString(t, c.stdin, c.args...)
			assert.Equal(t, c.out, out)
			assert.Equal(t, c.code, code)
		})
	}
}

func TestRunInFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("45-2+(9/8)\n(2/015)+5\n"), 0o644))
	out, code := runString(t, "", "-in", name, "-n", "-fmt", "%.4f", "1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "44.1250\n5.1333\n1.0000\n", out)
}

func TestRunYAML(t *testing.T) {
	out, code := runString(t, "", "-o", "yaml", "-echo", "1+2*3", "1+", "3/(2-2)")
	assert.Equal(t, 1, code)
	var got []result
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "1+2*3", got[0].Expression)
	assert.Equal(t, "1 2 3 * +", got[0].Postfix)
	require.NotNil(t, got[0].Result)
	assert.Equal(t, 7.0, *got[0].Result)
	assert.Empty(t, got[0].Error)

	assert.Equal(t, "1+", got[1].Expression)
	assert.Empty(t, got[1].Postfix)
	assert.Nil(t, got[1].Result)
	assert.Contains(t, got[1].Error, "ends with operator")

	assert.Equal(t, "3 2 2 - /", got[2].Postfix)
	assert.Nil(t, got[2].Result)
	assert.Contains(t, got[2].Error, "by zero")
}

func TestRunYAMLNoEcho(t *testing.T) {
	out, code := runString(t, "", "-o", "yaml", "1+1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "- expression: 1+1\n  result: 2\n", out)
}

func TestRunConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rpn.toml")
	cfg := "format = \"%.1f\"\necho = true\n"
	require.NoError(t, os.WriteFile(name, []byte(cfg), 0o644))

	out, code := runString(t, "", "-config", name, "5/2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "5 2 / : 2.5\n", out)

	// Flags win over the file.
	out, code = runString(t, "", "-config", name, "-echo=false", "-fmt", "%g", "5/2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "2.5\n", out)
}
