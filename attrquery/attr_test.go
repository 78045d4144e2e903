package attrquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSingleAttrLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "git-crypt", parseSingleAttrLine("secret.txt: filter: git-crypt"))
	assert.Equal(t, "unspecified", parseSingleAttrLine("plain.txt: filter: unspecified"))
	assert.Equal(t, "", parseSingleAttrLine("malformed line"))
}

func TestKeyAttributeValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "git-crypt", keyAttributeValue(""))
	assert.Equal(t, "git-crypt-work", keyAttributeValue("work"))
}
