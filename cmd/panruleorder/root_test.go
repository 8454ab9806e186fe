// cmd/panruleorder/root_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test flag handling, arg validation, and end-to-end invocations

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `<config>
  <shared>
    <post-rulebase>
      <security>
        <rules>
          <entry name="shared-deny"/>
        </rules>
      </security>
    </post-rulebase>
  </shared>
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="branch-offices">
          <post-rulebase>
            <security>
              <rules>
                <entry name="allow-dns"/>
                <entry name="allow-web"/>
              </rules>
            </security>
          </post-rulebase>
        </entry>
      </device-group>
    </entry>
  </devices>
</config>
`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeInputs(t *testing.T, orderCSV string) (input, order, output string) {
	t.Helper()
	dir := t.TempDir()
	input = filepath.Join(dir, "config.xml")
	order = filepath.Join(dir, "order.csv")
	output = filepath.Join(dir, "out.xml")
	require.NoError(t, os.WriteFile(input, []byte(testConfig), 0644))
	require.NoError(t, os.WriteFile(order, []byte(orderCSV), 0644))
	return input, order, output
}

func TestRoot_ReorderDeviceGroup(t *testing.T) {
	input, order, output := writeInputs(t, "allow-web\nallow-dns\n")

	stdout, _, err := execute(t, input, order, output, "--target", "branch-offices")

	require.NoError(t, err)
	assert.Contains(t, stdout, "post-rulebase")
	assert.Contains(t, stdout, "written to")
	assert.FileExists(t, output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Less(t,
		strings.Index(string(data), `name="allow-web"`),
		strings.Index(string(data), `name="allow-dns"`),
		"allow-web should come first in the output")
}

func TestRoot_ReorderShared(t *testing.T) {
	input, order, output := writeInputs(t, "shared-deny\n")

	stdout, _, err := execute(t, input, order, output, "--use-shared")

	require.NoError(t, err)
	assert.Contains(t, stdout, "shared")
	assert.FileExists(t, output)
}

func TestRoot_MissingNamesReported(t *testing.T) {
	input, order, output := writeInputs(t, "ghost-rule\n")

	_, stderr, err := execute(t, input, order, output, "--target", "branch-offices")

	require.NoError(t, err)
	assert.Contains(t, stderr, "ghost-rule")
	assert.Contains(t, stderr, "allow-dns", "unlisted rules are reported")
}

func TestRoot_ListTargets(t *testing.T) {
	input, _, _ := writeInputs(t, "")

	stdout, _, err := execute(t, input, "--list-targets")

	require.NoError(t, err)
	assert.Contains(t, stdout, "branch-offices")
}

func TestRoot_ListTargetsIgnoresOrderAndOutput(t *testing.T) {
	input, order, output := writeInputs(t, "")
	require.NoError(t, os.Remove(order))

	stdout, _, err := execute(t, input, order, output, "--list-targets")

	require.NoError(t, err, "listing must not read the order list")
	assert.Contains(t, stdout, "branch-offices")
	assert.NoFileExists(t, output, "listing must not write the output path")
}

func TestRoot_NoTargetSelected(t *testing.T) {
	input, order, output := writeInputs(t, "allow-dns\n")

	_, _, err := execute(t, input, order, output)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--target")
}

func TestRoot_TargetFlagsMutuallyExclusive(t *testing.T) {
	input, order, output := writeInputs(t, "allow-dns\n")

	_, _, err := execute(t, input, order, output, "--target", "branch-offices", "--use-shared")

	require.Error(t, err)
}

func TestRoot_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	order := filepath.Join(dir, "order.csv")
	require.NoError(t, os.WriteFile(order, []byte("x\n"), 0644))

	_, _, err := execute(t, filepath.Join(dir, "nope.xml"), order,
		filepath.Join(dir, "out.xml"), "--use-shared")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRoot_TooFewArgs(t *testing.T) {
	input, order, _ := writeInputs(t, "allow-dns\n")

	_, _, err := execute(t, input, order, "--target", "branch-offices")

	require.Error(t, err)
}

func TestRoot_UnknownGroup(t *testing.T) {
	input, order, output := writeInputs(t, "allow-dns\n")

	_, _, err := execute(t, input, order, output, "--target", "no-such-group")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-group")
}
