package alias

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAliases(t *testing.T) {
	input := strings.Join([]string{
		"; comment line",
		"# another comment",
		"",
		"   ",
		"Sano Aarhus = Egernvej 5, 8270 Højbjerg",
		"  office=Vesterbrogade 1 = Baghuset  ",
		"no separator here",
		"= value without key",
		"empty value =",
		"\tKontor Nord\t=\tNørregade 3\t",
	}, "\r\n")

	aliases, err := ParseAliases(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"sano aarhus": "Egernvej 5, 8270 Højbjerg",
		"office":      "Vesterbrogade 1 = Baghuset",
		"kontor nord": "Nørregade 3",
	}, aliases)
}

func TestParseAliases_OnlyComments(t *testing.T) {
	aliases, err := ParseAliases(strings.NewReader("; a\n# b\n\n"))
	require.NoError(t, err)
	assert.Empty(t, aliases)
}
