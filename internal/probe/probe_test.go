package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst3shim/internal/gain"
	"github.com/justyntemme/vst3shim/pkg/factory"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

func gainHost(t *testing.T) Host {
	t.Helper()
	f, err := gain.NewFactory()
	require.NoError(t, err)
	return Direct(f)
}

func checkByName(t *testing.T, r Report, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q", name)
	return Check{}
}

func TestRunGainPasses(t *testing.T) {
	p := debug.NewProfiler()
	r := Run(gainHost(t), p)

	for _, c := range r.Checks {
		assert.True(t, c.Passed(), "%s: %s", c.Name, c.Detail())
	}
	assert.True(t, r.Passed())

	assert.Equal(t, gain.FactoryInfo.Vendor, r.Factory.Vendor)
	require.Len(t, r.Classes, 2)
	assert.Equal(t, "Gain", r.Classes[0].Name)
	assert.Equal(t, "Gain Controller", r.Classes[1].Name)

	m, ok := p.Get("queryInterface")
	require.True(t, ok)
	assert.Equal(t, uint64(len(supported)+len(unsupported)), m.Count)
	for _, g := range factory.Generations {
		m, ok := p.Get(g.String())
		require.True(t, ok, g.String())
		assert.Equal(t, uint64(2), m.Count)
	}
	assert.Equal(t, p.All(), r.Timings)
}

func TestRunEmptyFactory(t *testing.T) {
	r := Run(Direct(factory.Empty()), nil)
	assert.True(t, r.Passed())
	assert.Empty(t, r.Classes)
}

// leakyHost writes records it should leave alone and answers every
// interface query.
type leakyHost struct {
	Host
}

func (h leakyHost) QueryInterface(vst3.TUID) (vst3.Result, bool) {
	return vst3.ResultOk, true
}

func (h leakyHost) GetClassInfo(index int32, out *vst3.PClassInfo) vst3.Result {
	res := h.Host.GetClassInfo(index, out)
	if !res.OK() {
		out.Cardinality = 1
	}
	return res
}

func TestRunDetectsViolations(t *testing.T) {
	r := Run(leakyHost{gainHost(t)}, nil)
	assert.False(t, r.Passed())

	qi := checkByName(t, r, "queryInterface")
	assert.False(t, qi.Passed())
	assert.Contains(t, qi.Detail(), "IComponent: got kResultOk")

	invalid := checkByName(t, r, "invalidIndex")
	assert.False(t, invalid.Passed())
	assert.Contains(t, invalid.Detail(), "record written on failure")

	assert.True(t, checkByName(t, r, "classInfo").Passed())
	assert.True(t, checkByName(t, r, "refCount").Passed())
}

// renamingHost reports a different name in the extended generation.
type renamingHost struct {
	Host
}

func (h renamingHost) GetClassInfo2(index int32, out *vst3.PClassInfo2) vst3.Result {
	res := h.Host.GetClassInfo2(index, out)
	if res.OK() {
		vst3.WriteNarrow(out.Name[:], "Other")
	}
	return res
}

func TestRunDetectsGenerationMismatch(t *testing.T) {
	r := Run(renamingHost{gainHost(t)}, nil)

	c := checkByName(t, r, "classInfo")
	require.False(t, c.Passed())
	assert.Contains(t, c.Detail(), `name "Gain" in getClassInfo, "Other" in getClassInfo2`)
}

func TestUniqueCIDs(t *testing.T) {
	cid := vst3.InlineUID(1, 2, 3, 4)
	c := uniqueCIDs([]factory.ClassDescriptor{
		{CID: cid, Name: "A"},
		{CID: cid, Name: "B"},
		{Name: "C"},
	})
	require.Len(t, c.Failures, 2)
	assert.Contains(t, c.Failures[0], "A and B share CID")
	assert.Contains(t, c.Failures[1], "C: CID is all zeros")
}
