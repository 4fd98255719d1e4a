package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultResolver_Name(t *testing.T) {
	t.Parallel()

	resolver := DefaultResolver{}

	assert.Equal(t, "prop", resolver.Name(Prop))
	assert.Equal(t, "context", resolver.Name(Context))
	assert.Equal(t, "child context", resolver.Name(ChildContext))
}

func TestDefaultResolver_UnknownKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "value", DefaultResolver{}.Name(Kind(99)))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "prop", Prop.String())
	assert.Equal(t, "child context", ChildContext.String())
}
