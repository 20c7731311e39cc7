package text

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBuiltinTables(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, language.English, c.Language())
	assert.Equal(t, "Inventory", c.Text("Inventory"))

	assert.Equal(t, language.German, c.SetLanguage("de-AT,en;q=0.5"))
	assert.Equal(t, "Inventar", c.Text("Inventory"))
	assert.Equal(t, "Unknown", c.Text("Unknown"), "unknown keys come back as-is")
}

func TestFallbackToBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("Gold: Gold\nNoItems: No items.\n")},
		"fr.yaml": {Data: []byte("Gold: Or\n")},
	}
	c, err := Load(fsys, "en")
	require.NoError(t, err)

	assert.Equal(t, language.French, c.SetLanguage("fr"))
	assert.Equal(t, "Or", c.Text("Gold"))
	assert.Equal(t, "No items.", c.Text("NoItems"))

	assert.Equal(t, language.English, c.SetLanguage("ja"), "no match picks the base locale")
	assert.Equal(t, language.English, c.SetLanguage(""), "empty preference picks the base locale")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(fstest.MapFS{"fr.yaml": {Data: []byte("Gold: Or\n")}}, "en")
	assert.Error(t, err, "base table missing")

	_, err = Load(fstest.MapFS{"en.yaml": {Data: []byte("- not a map\n")}}, "en")
	assert.Error(t, err)

	_, err = Load(fstest.MapFS{"en.yaml": {Data: []byte("Gold: Gold\n")}}, "??")
	assert.Error(t, err)
}
