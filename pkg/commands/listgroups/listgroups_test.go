// pkg/commands/listgroups/listgroups_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test device-group discovery

package listgroups_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaydubbed/PanRuleOrder/pkg/commands/listgroups"
	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestListGroups(t *testing.T) {
	path := writeConfig(t, `<config>
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="branch-offices"/>
        <entry name="datacenter"/>
      </device-group>
    </entry>
  </devices>
</config>`)

	result, err := listgroups.ListGroups(listgroups.Options{InputPath: path})

	require.NoError(t, err)
	assert.Equal(t, []string{"branch-offices", "datacenter"}, result.Groups)
}

func TestListGroups_NoGroups(t *testing.T) {
	path := writeConfig(t, `<config><shared/></config>`)

	result, err := listgroups.ListGroups(listgroups.Options{InputPath: path})

	require.NoError(t, err)
	assert.Empty(t, result.Groups)
}

func TestListGroups_MissingInput(t *testing.T) {
	_, err := listgroups.ListGroups(listgroups.Options{
		InputPath: filepath.Join(t.TempDir(), "nope.xml"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}
