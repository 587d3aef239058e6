package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/community-service/pkg/pointer"
)

func TestIndirect(t *testing.T) {
	assert.Equal(t, 0, pointer.Indirect[int](nil))
	assert.Equal(t, 42, pointer.Indirect(pointer.Ptr(42)))
}

func TestPtr(t *testing.T) {
	p := pointer.Ptr("community")
	require.NotNil(t, p)
	assert.Equal(t, "community", *p)
}

func TestPtrWithZeroAsNil(t *testing.T) {
	assert.Nil(t, pointer.PtrWithZeroAsNil(0))
	assert.Nil(t, pointer.PtrWithZeroAsNil(""))

	p := pointer.PtrWithZeroAsNil(7)
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}
