package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrivialLifecycle(t *testing.T) {
	var lc Trivial[string]
	src := []string{"a", "b", "c"}
	dst := make([]string, 3)

	require.NoError(t, lc.Relocate(dst, src))
	assert.Equal(t, []string{"a", "b", "c"}, dst)
	assert.Equal(t, []string{"a", "b", "c"}, src, "relocate leaves the source intact")

	lc.Vacate(src)
	assert.Equal(t, []string{"", "", ""}, src)

	cp := make([]string, 3)
	require.NoError(t, lc.Copy(cp, dst))
	assert.Equal(t, dst, cp)

	lc.Destroy(dst)
	assert.Equal(t, []string{"", "", ""}, dst)
}

func TestMoveOnlyLifecycle(t *testing.T) {
	var lc MoveOnly[handle]
	reg := newRegistry()
	src := []handle{{id: 1, reg: reg}, {id: 2, reg: reg}}
	reg.live = 2
	dst := make([]handle, 2)

	require.NoError(t, lc.Relocate(dst, src))
	lc.Vacate(src)
	assert.Equal(t, 0, reg.disposed, "moved values are not disposed")
	assert.Equal(t, []handle{{}, {}}, src)
	assert.Equal(t, 2, dst[1].id)

	err := lc.Copy(make([]handle, 2), dst)
	require.ErrorIs(t, err, ErrNotCopyable)
	require.NoError(t, lc.Copy(nil, nil), "copying nothing succeeds")

	lc.Destroy(dst)
	assert.Equal(t, 2, reg.disposed)
	assert.Equal(t, 0, reg.live)
	assert.Equal(t, []handle{{}, {}}, dst)
}

func TestCopyableLifecycle(t *testing.T) {
	var lc Copyable[cell]
	reg := newRegistry()
	src := []cell{reg.make(1), reg.make(2), reg.make(3)}
	dst := make([]cell, 3)

	require.NoError(t, lc.Relocate(dst, src))
	assert.Equal(t, 6, reg.live)
	assert.Equal(t, 3, dst[2].val)

	lc.Vacate(src)
	assert.Equal(t, 3, reg.live, "originals are disposed after relocation")
	assert.Equal(t, []cell{{}, {}, {}}, src)

	lc.Destroy(dst)
	assert.Equal(t, 0, reg.live)
}

func TestCopyableLifecycleRollback(t *testing.T) {
	var lc Copyable[cell]
	reg := newRegistry()
	src := []cell{reg.make(1), reg.make(2), reg.make(3)}
	dst := make([]cell, 3)

	reg.failAfter(2)
	err := lc.Relocate(dst, src)
	require.ErrorIs(t, err, errCloneFailed)

	var relErr *RelocationError
	require.ErrorAs(t, err, &relErr)
	assert.Equal(t, 2, relErr.Index)

	assert.Equal(t, 3, reg.live, "partial clones are disposed")
	assert.Equal(t, []cell{{}, {}, {}}, dst)
	assert.Equal(t, []int{1, 2, 3}, []int{src[0].val, src[1].val, src[2].val})
}
