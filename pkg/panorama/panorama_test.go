// pkg/panorama/panorama_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Shared fixtures and helpers for the panorama package tests

package panorama_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/kaydubbed/PanRuleOrder/pkg/panorama"
)

// panoramaConfig is a trimmed Panorama export: one device-group with a
// post-rulebase, one with only a pre-rulebase, and shared post-rulebase
// rules.
const panoramaConfig = `<?xml version="1.0"?>
<config version="10.1.0">
  <shared>
    <post-rulebase>
      <security>
        <rules>
          <entry name="shared-deny-all"><action>deny</action></entry>
          <entry name="shared-allow-dns"><action>allow</action></entry>
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
                <entry name="allow-dns"><action>allow</action></entry>
                <entry name="allow-web"><action>allow</action></entry>
                <entry name="deny-all"><action>deny</action></entry>
              </rules>
            </security>
          </post-rulebase>
        </entry>
        <entry name="datacenter">
          <pre-rulebase>
            <security>
              <rules>
                <entry name="dc-allow-ntp"><action>allow</action></entry>
              </rules>
            </security>
          </pre-rulebase>
        </entry>
        <entry name="empty-group">
          <address/>
        </entry>
      </device-group>
    </entry>
  </devices>
</config>
`

// namespacedConfig is the same structure behind a namespace prefix.
const namespacedConfig = `<?xml version="1.0"?>
<pan:config xmlns:pan="http://paloaltonetworks.com/config" version="10.1.0">
  <pan:devices>
    <pan:entry name="localhost.localdomain">
      <pan:device-group>
        <pan:entry name="branch-offices">
          <pan:post-rulebase>
            <pan:security>
              <pan:rules>
                <pan:entry name="allow-dns"/>
                <pan:entry name="allow-web"/>
                <pan:entry name="deny-all"/>
              </pan:rules>
            </pan:security>
          </pan:post-rulebase>
        </pan:entry>
      </pan:device-group>
    </pan:entry>
  </pan:devices>
</pan:config>
`

// writeFixture writes content to a temp file and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// loadFixture parses a config fixture from a temp file.
func loadFixture(t *testing.T, content string) *panorama.Document {
	t.Helper()
	doc, err := panorama.Load(writeFixture(t, "config.xml", content))
	require.NoError(t, err)
	return doc
}

// entryNames lists the name attributes of a rules container's children.
func entryNames(rules *etree.Element) []string {
	var names []string
	for _, child := range rules.ChildElements() {
		names = append(names, child.SelectAttrValue("name", ""))
	}
	return names
}
